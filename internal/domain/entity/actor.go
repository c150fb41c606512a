package entity

// UnknownActorName nombre usado cuando la operación no tiene usuario asociado.
const UnknownActorName = "desconocido"

// Actor usuario que ejecuta una operación. Se pasa explícitamente a cada caso de
// uso que modifica datos, en lugar de leerlo de estado global.
type Actor struct {
	UserID   string
	Username string
}

// ActorFromUser construye el actor a partir del usuario autenticado.
func ActorFromUser(u *User) Actor {
	if u == nil {
		return Actor{}
	}
	return Actor{UserID: u.ID, Username: u.Username}
}

// Known informa si el actor identifica a un usuario.
func (a Actor) Known() bool { return a.UserID != "" }

// Name username o "desconocido".
func (a Actor) Name() string {
	if a.Username == "" {
		return UnknownActorName
	}
	return a.Username
}
