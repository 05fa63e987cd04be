package login

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/render"
	"golang.org/x/crypto/bcrypt"
	"turnos-backend/internal/storage"
)

type UserProvider interface {
	GetUserByRut(ctx context.Context, rut string) (*storage.User, error)
}

// Login valida rut y contraseña contra el hash guardado. Rut inexistente y
// contraseña incorrecta responden lo mismo para no revelar qué ruts existen.
func Login(log *slog.Logger, users UserProvider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.auth.Login"

		var req struct {
			Rut      string `json:"rut"`
			Password string `json:"password"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "JSON inválido", http.StatusBadRequest)
			return
		}
		if req.Rut == "" || req.Password == "" {
			http.Error(w, "faltan credenciales", http.StatusBadRequest)
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		user, err := users.GetUserByRut(ctx, req.Rut)
		if err != nil {
			if errors.Is(err, storage.ErrUserNotFound) {
				http.Error(w, "credenciales inválidas", http.StatusUnauthorized)
				return
			}
			log.Error(fmt.Sprintf("%s: %v", op, err))
			http.Error(w, "error al validar credenciales", http.StatusInternalServerError)
			return
		}

		if err := bcrypt.CompareHashAndPassword([]byte(user.HashedPassword), []byte(req.Password)); err != nil {
			http.Error(w, "credenciales inválidas", http.StatusUnauthorized)
			return
		}

		render.JSON(w, r, user)
	}
}
