package graph

import (
	"errors"
	"fmt"

	"github.com/VitaminP8/blogql/graph/model"
	"github.com/VitaminP8/blogql/internal/auth"
	"github.com/VitaminP8/blogql/internal/comment"
	"github.com/VitaminP8/blogql/internal/post"
	"github.com/VitaminP8/blogql/internal/user"
)

// Строки, которые видит клиент. Внутри кода ошибки всегда типизированы,
// в эти сентинелы они превращаются только на границе резолвера.
const (
	msgAuthError      = "Authentication error"
	msgLoginFailed    = "Login failed"
	msgPostNotFound   = "Post not found in database"
	msgPostDeleted    = "Post Deleted Successfully"
	msgCommentCreated = "Comment Created Successfully"
	msgHello          = "Hello world"
)

// Resolver служит корневой точкой для всех запросов и мутаций.
// Зависимости внедряются при старте процесса.
type Resolver struct {
	UserStore    user.UserStorage
	PostStore    post.PostStorage
	CommentStore comment.CommentStorage
	Tokens       *auth.Manager
	Gate         *auth.Gate
}

type UserRegistrationInput struct {
	Username  string
	Password  string
	FirstName string
	LastName  string
	Age       *int32
}

func (r *Resolver) Hello() *string {
	return strPtr(msgHello)
}

func (r *Resolver) CreateUser(args struct{ UserData *UserRegistrationInput }) (*UserResolver, error) {
	if args.UserData == nil {
		return nil, errors.New("userData is required")
	}

	in := args.UserData
	u, err := r.UserStore.CreateUser(in.Username, in.Password, in.FirstName, in.LastName, in.Age)
	if err != nil {
		return nil, fmt.Errorf("could not create user: %w", err)
	}

	return &UserResolver{u: u}, nil
}

func (r *Resolver) LoginUser(args struct{ Username, Password *string }) (*LoginPayloadResolver, error) {
	u, err := r.UserStore.GetUserByUsername(deref(args.Username))
	// "нет такого пользователя" и "неверный пароль" не различаются,
	// чтобы не раскрывать существование аккаунта
	if err != nil || u.Password != deref(args.Password) {
		return &LoginPayloadResolver{errMsg: strPtr(msgLoginFailed)}, nil
	}

	token, err := r.Tokens.IssueToken(u.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to issue token: %w", err)
	}

	return &LoginPayloadResolver{token: &token}, nil
}

func (r *Resolver) PostCreate(args struct{ Token, Content *string }) (*string, error) {
	actor := r.actor(args.Token)
	if actor == nil {
		return strPtr(msgAuthError), nil
	}

	content := deref(args.Content)
	_, err := r.PostStore.CreatePost(actor.ID, content)
	if err != nil {
		return nil, fmt.Errorf("could not create post: %w", err)
	}

	// подтверждением служит сам текст поста
	return &content, nil
}

func (r *Resolver) PostUpdate(args struct {
	Token   *string
	Content *string
	PostID  *string
}) (*PostResolver, error) {
	actor := r.actor(args.Token)
	if actor == nil {
		return &PostResolver{errMsg: strPtr(msgAuthError)}, nil
	}

	// владение постом не проверяется: любой вошедший пользователь
	// может изменить любой пост
	postID := deref(args.PostID)
	err := r.PostStore.UpdatePostContent(postID, deref(args.Content))
	if errors.Is(err, post.ErrNotFound) {
		return &PostResolver{errMsg: strPtr(msgPostNotFound)}, nil
	}
	if err != nil {
		// сбой хранилища наружу уходит как null
		return nil, nil
	}

	updated, err := r.PostStore.GetPostById(postID)
	if err != nil {
		return nil, fmt.Errorf("could not get updated post: %w", err)
	}

	owner, err := r.UserStore.GetUserByID(updated.UserID)
	if err != nil {
		return nil, fmt.Errorf("could not get post owner: %w", err)
	}

	return &PostResolver{post: updated, owner: owner, comments: r.CommentStore}, nil
}

func (r *Resolver) PostDelete(args struct{ Token, PostID *string }) (*string, error) {
	actor := r.actor(args.Token)
	if actor == nil {
		return strPtr(msgAuthError), nil
	}

	// удаление безусловное: несуществующий ID - тоже успех
	err := r.PostStore.DeletePostById(deref(args.PostID))
	if err != nil {
		return nil, nil
	}

	return strPtr(msgPostDeleted), nil
}

func (r *Resolver) CreateComment(args struct{ Token, PostID, Content *string }) (*string, error) {
	actor := r.actor(args.Token)
	if actor == nil {
		return strPtr(msgAuthError), nil
	}

	_, err := r.CommentStore.CreateComment(deref(args.PostID), deref(args.Content))
	if err != nil {
		// сбой хранилища (в том числе отсутствующий пост) наружу уходит как null
		return nil, nil
	}

	return strPtr(msgCommentCreated), nil
}

func (r *Resolver) GetMyPosts(args struct{ Token *string }) ([]*PostResolver, error) {
	actor := r.actor(args.Token)
	if actor == nil {
		return nil, errors.New(msgAuthError)
	}

	posts, err := r.PostStore.GetPostsByUserId(actor.ID)
	if err != nil {
		return nil, fmt.Errorf("could not get posts: %w", err)
	}

	resolvers := make([]*PostResolver, 0, len(posts))
	for _, p := range posts {
		// владелец у всех постов один и уже известен,
		// повторный поход в хранилище не нужен
		resolvers = append(resolvers, &PostResolver{post: p, owner: actor, comments: r.CommentStore})
	}

	return resolvers, nil
}

func (r *Resolver) GetAllPosts() ([]*PostResolver, error) {
	posts, err := r.PostStore.GetAllPosts()
	if err != nil {
		return nil, fmt.Errorf("could not get posts: %w", err)
	}

	// владельцы подтягиваются одним запросом по собранным ID
	seen := make(map[string]bool, len(posts))
	var ownerIds []string
	for _, p := range posts {
		if !seen[p.UserID] {
			seen[p.UserID] = true
			ownerIds = append(ownerIds, p.UserID)
		}
	}

	owners, err := r.UserStore.GetUsersByIds(ownerIds)
	if err != nil {
		return nil, fmt.Errorf("could not get post owners: %w", err)
	}

	resolvers := make([]*PostResolver, 0, len(posts))
	for _, p := range posts {
		resolvers = append(resolvers, &PostResolver{post: p, owner: owners[p.UserID], comments: r.CommentStore})
	}

	return resolvers, nil
}

func (r *Resolver) GetPostComments(args struct{ PostID *string }) ([]*CommentResolver, error) {
	comments, err := r.CommentStore.GetCommentsByPostId(deref(args.PostID))
	if err != nil {
		return nil, fmt.Errorf("could not get comments: %w", err)
	}

	resolvers := make([]*CommentResolver, 0, len(comments))
	for _, c := range comments {
		resolvers = append(resolvers, &CommentResolver{c: c})
	}

	return resolvers, nil
}

// actor превращает токен-аргумент в действующего пользователя (или nil).
func (r *Resolver) actor(token *string) *model.User {
	if token == nil {
		return nil
	}
	return r.Gate.ResolveActor(*token)
}

// UserResolver отдает только публичные поля:
// username, password и ID через схему не видны.
type UserResolver struct {
	u *model.User
}

func (r *UserResolver) FirstName() string { return r.u.FirstName }
func (r *UserResolver) LastName() string  { return r.u.LastName }
func (r *UserResolver) Age() *int32       { return r.u.Age }

type LoginPayloadResolver struct {
	token  *string
	errMsg *string
}

func (r *LoginPayloadResolver) Token() *string { return r.token }
func (r *LoginPayloadResolver) Error() *string { return r.errMsg }

// PostResolver - либо пост с владельцем, либо payload с одним полем error.
type PostResolver struct {
	post     *model.Post
	owner    *model.User
	comments comment.CommentStorage
	errMsg   *string
}

func (r *PostResolver) Content() string {
	if r.post == nil {
		return ""
	}
	return r.post.Content
}

func (r *PostResolver) User() *UserResolver {
	if r.owner == nil {
		// user: User! - при выборке поля это станет ошибкой ответа
		return nil
	}
	return &UserResolver{u: r.owner}
}

// Comments лениво подтягивает комментарии поста при выборке поля.
func (r *PostResolver) Comments() (*[]*CommentResolver, error) {
	if r.post == nil || r.comments == nil {
		return nil, nil
	}

	comments, err := r.comments.GetCommentsByPostId(r.post.ID)
	if err != nil {
		return nil, fmt.Errorf("could not get comments: %w", err)
	}

	resolvers := make([]*CommentResolver, 0, len(comments))
	for _, c := range comments {
		resolvers = append(resolvers, &CommentResolver{c: c})
	}

	return &resolvers, nil
}

func (r *PostResolver) Error() *string { return r.errMsg }

type CommentResolver struct {
	c *model.Comment
}

func (r *CommentResolver) Content() *string {
	if r.c == nil {
		return nil
	}
	return &r.c.Content
}

// Error у комментария всегда пуст, поле оставлено ради контракта схемы.
func (r *CommentResolver) Error() *string { return nil }

func strPtr(s string) *string {
	return &s
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
