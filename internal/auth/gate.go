package auth

import (
	"github.com/VitaminP8/blogql/graph/model"
	"github.com/VitaminP8/blogql/internal/user"
)

// Gate по токену определяет действующего пользователя.
type Gate struct {
	tokens *Manager
	users  user.UserStorage
}

func NewGate(tokens *Manager, users user.UserStorage) *Gate {
	return &Gate{tokens: tokens, users: users}
}

// ResolveActor возвращает пользователя или nil.
// Невалидный токен, неизвестный пользователь и сбой хранилища
// намеренно не различаются: во всех случаях действующего лица нет.
func (g *Gate) ResolveActor(token string) *model.User {
	userID, err := g.tokens.VerifyToken(token)
	if err != nil {
		return nil
	}

	actor, err := g.users.GetUserByID(userID)
	if err != nil {
		return nil
	}

	return actor
}
