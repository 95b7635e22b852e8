package graph

// Schema задает контракт API дословно, включая поля error внутри Post и
// Comment: через них наружу уходят строки-сентинелы вместо типизированных
// ошибок. Схема разбирается при старте процесса.
const Schema = `
	schema {
		query: Query
		mutation: Mutation
	}

	"The data the user needs to enter to register"
	input UserRegistrationInput {
		username: String!
		password: String!
		firstName: String!
		lastName: String!
		age: Int
	}

	type LoginPayload {
		token: String
		error: String
	}

	type User {
		firstName: String!
		lastName: String!
		age: Int
	}

	type Post {
		content: String!
		user: User!
		comments: [Comment]
		error: String
	}

	type Comment {
		error: String
		content: String
	}

	type Query {
		hello: String
		getMyPosts(token: String): [Post!]!
		getAllPosts: [Post!]!
		getPostComments(postId: String): [Comment!]!
	}

	type Mutation {
		createUser(userData: UserRegistrationInput): User
		loginUser(username: String, password: String): LoginPayload
		postCreate(token: String, content: String): String
		postUpdate(token: String, content: String, postId: String): Post
		postDelete(token: String, postId: String): String
		createComment(token: String, postId: String, content: String): String
	}
`
