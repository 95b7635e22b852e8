package model

// User - внутреннее представление пользователя.
// Password хранится открытым текстом (хеширование не входит в задачу)
// и наружу через схему никогда не отдается.
type User struct {
	ID        string
	Username  string
	Password  string
	FirstName string
	LastName  string
	Age       *int32
}

// Post - пост с упорядоченным списком ссылок на комментарии.
// CommentIDs пополняется только добавлением в конец.
type Post struct {
	ID         string
	Content    string
	UserID     string
	CommentIDs []string
}

type Comment struct {
	ID      string
	PostID  string
	Content string
}
