package graph

import (
	"errors"
	"testing"

	"github.com/VitaminP8/blogql/internal/auth"
	"github.com/VitaminP8/blogql/internal/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestResolver() (*Resolver, *mocks.MockUserStorage, *mocks.MockPostStorage, *mocks.MockCommentStorage) {
	userStore := mocks.NewMockUserStorage()
	postStore := mocks.NewMockPostStorage()
	commentStore := mocks.NewMockCommentStorage(postStore)

	tokens := auth.NewManager("test_secret_key_for_jwt")

	resolver := &Resolver{
		UserStore:    userStore,
		PostStore:    postStore,
		CommentStore: commentStore,
		Tokens:       tokens,
		Gate:         auth.NewGate(tokens, userStore),
	}

	return resolver, userStore, postStore, commentStore
}

// registerAndLogin регистрирует пользователя и возвращает его токен
func registerAndLogin(t *testing.T, resolver *Resolver, username, firstName string) string {
	t.Helper()

	_, err := resolver.CreateUser(struct{ UserData *UserRegistrationInput }{
		UserData: &UserRegistrationInput{
			Username:  username,
			Password:  "password123",
			FirstName: firstName,
			LastName:  "User",
		},
	})
	require.NoError(t, err)

	payload, err := resolver.LoginUser(struct{ Username, Password *string }{
		Username: strPtr(username),
		Password: strPtr("password123"),
	})
	require.NoError(t, err)
	require.Nil(t, payload.Error())
	require.NotNil(t, payload.Token())

	return *payload.Token()
}

func TestResolver_Hello(t *testing.T) {
	resolver, _, _, _ := newTestResolver()

	greeting := resolver.Hello()
	require.NotNil(t, greeting)
	assert.Equal(t, "Hello world", *greeting)
}

func TestResolver_CreateUser(t *testing.T) {
	resolver, _, _, _ := newTestResolver()

	t.Run("Successful registration returns public fields", func(t *testing.T) {
		age := int32(25)
		u, err := resolver.CreateUser(struct{ UserData *UserRegistrationInput }{
			UserData: &UserRegistrationInput{
				Username:  "testuser",
				Password:  "password123",
				FirstName: "Test",
				LastName:  "User",
				Age:       &age,
			},
		})
		require.NoError(t, err)
		assert.Equal(t, "Test", u.FirstName())
		assert.Equal(t, "User", u.LastName())
		require.NotNil(t, u.Age())
		assert.Equal(t, int32(25), *u.Age())
	})

	t.Run("Age stays null when not provided", func(t *testing.T) {
		u, err := resolver.CreateUser(struct{ UserData *UserRegistrationInput }{
			UserData: &UserRegistrationInput{
				Username:  "ageless",
				Password:  "password123",
				FirstName: "Age",
				LastName:  "Less",
			},
		})
		require.NoError(t, err)
		assert.Nil(t, u.Age())
	})

	t.Run("Error when registering existing user", func(t *testing.T) {
		_, err := resolver.CreateUser(struct{ UserData *UserRegistrationInput }{
			UserData: &UserRegistrationInput{
				Username:  "testuser",
				Password:  "otherpassword",
				FirstName: "Other",
				LastName:  "User",
			},
		})
		assert.Error(t, err)
	})

	t.Run("Error when input is missing", func(t *testing.T) {
		_, err := resolver.CreateUser(struct{ UserData *UserRegistrationInput }{})
		assert.Error(t, err)
	})
}

func TestResolver_LoginUser(t *testing.T) {
	resolver, _, _, _ := newTestResolver()

	_, err := resolver.CreateUser(struct{ UserData *UserRegistrationInput }{
		UserData: &UserRegistrationInput{
			Username:  "loginuser",
			Password:  "password123",
			FirstName: "Login",
			LastName:  "User",
		},
	})
	require.NoError(t, err)

	t.Run("Successful login returns verifiable token", func(t *testing.T) {
		payload, err := resolver.LoginUser(struct{ Username, Password *string }{
			Username: strPtr("loginuser"),
			Password: strPtr("password123"),
		})
		require.NoError(t, err)
		assert.Nil(t, payload.Error())
		require.NotNil(t, payload.Token())
		assert.NotEmpty(t, *payload.Token())

		_, err = resolver.Tokens.VerifyToken(*payload.Token())
		assert.NoError(t, err)
	})

	t.Run("Wrong password gives Login failed", func(t *testing.T) {
		payload, err := resolver.LoginUser(struct{ Username, Password *string }{
			Username: strPtr("loginuser"),
			Password: strPtr("wrongpassword"),
		})
		require.NoError(t, err)
		assert.Nil(t, payload.Token())
		require.NotNil(t, payload.Error())
		assert.Equal(t, "Login failed", *payload.Error())
	})

	t.Run("Unknown user gives the same Login failed", func(t *testing.T) {
		payload, err := resolver.LoginUser(struct{ Username, Password *string }{
			Username: strPtr("nonexistent"),
			Password: strPtr("password123"),
		})
		require.NoError(t, err)
		assert.Nil(t, payload.Token())
		require.NotNil(t, payload.Error())
		assert.Equal(t, "Login failed", *payload.Error())
	})
}

func TestResolver_PostCreate(t *testing.T) {
	resolver, _, postStore, _ := newTestResolver()
	token := registerAndLogin(t, resolver, "author", "Author")

	t.Run("Successful creation echoes the content", func(t *testing.T) {
		result, err := resolver.PostCreate(struct{ Token, Content *string }{
			Token:   strPtr(token),
			Content: strPtr("My first post"),
		})
		require.NoError(t, err)
		require.NotNil(t, result)
		assert.Equal(t, "My first post", *result)

		posts, err := postStore.GetAllPosts()
		require.NoError(t, err)
		require.Len(t, posts, 1)
		assert.Equal(t, "My first post", posts[0].Content)
	})

	t.Run("Invalid token gives Authentication error and no mutation", func(t *testing.T) {
		result, err := resolver.PostCreate(struct{ Token, Content *string }{
			Token:   strPtr("garbage"),
			Content: strPtr("Should not appear"),
		})
		require.NoError(t, err)
		require.NotNil(t, result)
		assert.Equal(t, "Authentication error", *result)

		posts, err := postStore.GetAllPosts()
		require.NoError(t, err)
		assert.Len(t, posts, 1)
	})

	t.Run("Missing token gives Authentication error", func(t *testing.T) {
		result, err := resolver.PostCreate(struct{ Token, Content *string }{
			Content: strPtr("Should not appear"),
		})
		require.NoError(t, err)
		require.NotNil(t, result)
		assert.Equal(t, "Authentication error", *result)
	})
}

func TestResolver_PostUpdate(t *testing.T) {
	resolver, _, postStore, _ := newTestResolver()
	token := registerAndLogin(t, resolver, "author", "Author")

	created, err := postStore.CreatePost("1", "Old content")
	require.NoError(t, err)

	t.Run("Invalid token gives Authentication error payload", func(t *testing.T) {
		result, err := resolver.PostUpdate(struct {
			Token   *string
			Content *string
			PostID  *string
		}{
			Token:   strPtr("garbage"),
			Content: strPtr("New content"),
			PostID:  strPtr(created.ID),
		})
		require.NoError(t, err)
		require.NotNil(t, result)
		require.NotNil(t, result.Error())
		assert.Equal(t, "Authentication error", *result.Error())

		unchanged, err := postStore.GetPostById(created.ID)
		require.NoError(t, err)
		assert.Equal(t, "Old content", unchanged.Content)
	})

	t.Run("Nonexistent post gives Post not found payload", func(t *testing.T) {
		result, err := resolver.PostUpdate(struct {
			Token   *string
			Content *string
			PostID  *string
		}{
			Token:   strPtr(token),
			Content: strPtr("New content"),
			PostID:  strPtr("nonexistent-id"),
		})
		require.NoError(t, err)
		require.NotNil(t, result)
		require.NotNil(t, result.Error())
		assert.Equal(t, "Post not found in database", *result.Error())
	})

	t.Run("Successful update returns post with owner", func(t *testing.T) {
		result, err := resolver.PostUpdate(struct {
			Token   *string
			Content *string
			PostID  *string
		}{
			Token:   strPtr(token),
			Content: strPtr("New content"),
			PostID:  strPtr(created.ID),
		})
		require.NoError(t, err)
		require.NotNil(t, result)
		assert.Nil(t, result.Error())
		assert.Equal(t, "New content", result.Content())
		require.NotNil(t, result.User())
		assert.Equal(t, "Author", result.User().FirstName())
	})

	t.Run("Storage failure gives null", func(t *testing.T) {
		postStore.ForcedError = errors.New("storage is down")
		defer func() { postStore.ForcedError = nil }()

		result, err := resolver.PostUpdate(struct {
			Token   *string
			Content *string
			PostID  *string
		}{
			Token:   strPtr(token),
			Content: strPtr("New content"),
			PostID:  strPtr(created.ID),
		})
		assert.NoError(t, err)
		assert.Nil(t, result)
	})
}

func TestResolver_PostDelete(t *testing.T) {
	resolver, _, postStore, _ := newTestResolver()
	token := registerAndLogin(t, resolver, "author", "Author")

	created, err := postStore.CreatePost("1", "Content")
	require.NoError(t, err)

	t.Run("Invalid token gives Authentication error", func(t *testing.T) {
		result, err := resolver.PostDelete(struct{ Token, PostID *string }{
			Token:  strPtr("garbage"),
			PostID: strPtr(created.ID),
		})
		require.NoError(t, err)
		require.NotNil(t, result)
		assert.Equal(t, "Authentication error", *result)
	})

	t.Run("Successful delete", func(t *testing.T) {
		result, err := resolver.PostDelete(struct{ Token, PostID *string }{
			Token:  strPtr(token),
			PostID: strPtr(created.ID),
		})
		require.NoError(t, err)
		require.NotNil(t, result)
		assert.Equal(t, "Post Deleted Successfully", *result)

		_, err = postStore.GetPostById(created.ID)
		assert.Error(t, err)
	})

	t.Run("Deleting nonexistent post still succeeds", func(t *testing.T) {
		result, err := resolver.PostDelete(struct{ Token, PostID *string }{
			Token:  strPtr(token),
			PostID: strPtr("nonexistent-id"),
		})
		require.NoError(t, err)
		require.NotNil(t, result)
		assert.Equal(t, "Post Deleted Successfully", *result)
	})

	t.Run("Storage failure gives null", func(t *testing.T) {
		postStore.ForcedError = errors.New("storage is down")
		defer func() { postStore.ForcedError = nil }()

		result, err := resolver.PostDelete(struct{ Token, PostID *string }{
			Token:  strPtr(token),
			PostID: strPtr(created.ID),
		})
		assert.NoError(t, err)
		assert.Nil(t, result)
	})
}

func TestResolver_CreateComment(t *testing.T) {
	resolver, _, postStore, _ := newTestResolver()
	token := registerAndLogin(t, resolver, "author", "Author")

	created, err := postStore.CreatePost("1", "Content")
	require.NoError(t, err)

	t.Run("Invalid token gives Authentication error", func(t *testing.T) {
		result, err := resolver.CreateComment(struct{ Token, PostID, Content *string }{
			Token:   strPtr("garbage"),
			PostID:  strPtr(created.ID),
			Content: strPtr("Comment"),
		})
		require.NoError(t, err)
		require.NotNil(t, result)
		assert.Equal(t, "Authentication error", *result)
	})

	t.Run("Successful comment creation", func(t *testing.T) {
		before, err := resolver.GetPostComments(struct{ PostID *string }{PostID: strPtr(created.ID)})
		require.NoError(t, err)

		result, err := resolver.CreateComment(struct{ Token, PostID, Content *string }{
			Token:   strPtr(token),
			PostID:  strPtr(created.ID),
			Content: strPtr("Nice post"),
		})
		require.NoError(t, err)
		require.NotNil(t, result)
		assert.Equal(t, "Comment Created Successfully", *result)

		after, err := resolver.GetPostComments(struct{ PostID *string }{PostID: strPtr(created.ID)})
		require.NoError(t, err)
		// последовательность комментариев выросла ровно на один
		require.Len(t, after, len(before)+1)
		last := after[len(after)-1]
		require.NotNil(t, last.Content())
		assert.Equal(t, "Nice post", *last.Content())
	})

	t.Run("Nonexistent post gives null", func(t *testing.T) {
		result, err := resolver.CreateComment(struct{ Token, PostID, Content *string }{
			Token:   strPtr(token),
			PostID:  strPtr("nonexistent-id"),
			Content: strPtr("Comment"),
		})
		assert.NoError(t, err)
		assert.Nil(t, result)
	})
}

func TestResolver_GetMyPosts(t *testing.T) {
	resolver, _, _, _ := newTestResolver()
	token := registerAndLogin(t, resolver, "author", "Author")
	otherToken := registerAndLogin(t, resolver, "other", "Other")

	_, err := resolver.PostCreate(struct{ Token, Content *string }{
		Token:   strPtr(token),
		Content: strPtr("Mine"),
	})
	require.NoError(t, err)
	_, err = resolver.PostCreate(struct{ Token, Content *string }{
		Token:   strPtr(otherToken),
		Content: strPtr("Not mine"),
	})
	require.NoError(t, err)

	t.Run("Returns only posts of the acting user", func(t *testing.T) {
		posts, err := resolver.GetMyPosts(struct{ Token *string }{Token: strPtr(token)})
		require.NoError(t, err)
		require.Len(t, posts, 1)
		assert.Equal(t, "Mine", posts[0].Content())
		require.NotNil(t, posts[0].User())
		assert.Equal(t, "Author", posts[0].User().FirstName())
	})

	t.Run("Invalid token gives Authentication error", func(t *testing.T) {
		_, err := resolver.GetMyPosts(struct{ Token *string }{Token: strPtr("garbage")})
		require.Error(t, err)
		assert.Equal(t, "Authentication error", err.Error())
	})

	t.Run("Missing token gives Authentication error", func(t *testing.T) {
		_, err := resolver.GetMyPosts(struct{ Token *string }{})
		require.Error(t, err)
		assert.Equal(t, "Authentication error", err.Error())
	})
}

func TestResolver_GetAllPosts(t *testing.T) {
	resolver, _, _, _ := newTestResolver()
	firstToken := registerAndLogin(t, resolver, "first", "First")
	secondToken := registerAndLogin(t, resolver, "second", "Second")

	_, err := resolver.PostCreate(struct{ Token, Content *string }{
		Token:   strPtr(firstToken),
		Content: strPtr("Post 1"),
	})
	require.NoError(t, err)
	_, err = resolver.PostCreate(struct{ Token, Content *string }{
		Token:   strPtr(secondToken),
		Content: strPtr("Post 2"),
	})
	require.NoError(t, err)

	t.Run("Returns all posts with resolved owners without auth", func(t *testing.T) {
		posts, err := resolver.GetAllPosts()
		require.NoError(t, err)
		require.Len(t, posts, 2)

		ownersByContent := map[string]string{}
		for _, p := range posts {
			require.NotNil(t, p.User())
			ownersByContent[p.Content()] = p.User().FirstName()
		}
		assert.Equal(t, "First", ownersByContent["Post 1"])
		assert.Equal(t, "Second", ownersByContent["Post 2"])
	})
}

func TestResolver_GetPostComments(t *testing.T) {
	resolver, _, postStore, commentStore := newTestResolver()
	token := registerAndLogin(t, resolver, "author", "Author")

	created, err := postStore.CreatePost("1", "Content")
	require.NoError(t, err)

	for _, content := range []string{"First", "Second", "Third"} {
		_, err := resolver.CreateComment(struct{ Token, PostID, Content *string }{
			Token:   strPtr(token),
			PostID:  strPtr(created.ID),
			Content: strPtr(content),
		})
		require.NoError(t, err)
	}

	t.Run("Comments come back in append order without auth", func(t *testing.T) {
		comments, err := resolver.GetPostComments(struct{ PostID *string }{PostID: strPtr(created.ID)})
		require.NoError(t, err)
		require.Len(t, comments, 3)
		assert.Equal(t, "First", *comments[0].Content())
		assert.Equal(t, "Second", *comments[1].Content())
		assert.Equal(t, "Third", *comments[2].Content())
	})

	t.Run("Storage failure gives error", func(t *testing.T) {
		commentStore.ForcedError = errors.New("storage is down")
		defer func() { commentStore.ForcedError = nil }()

		_, err := resolver.GetPostComments(struct{ PostID *string }{PostID: strPtr(created.ID)})
		assert.Error(t, err)
	})
}
