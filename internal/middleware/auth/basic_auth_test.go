package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func protected() http.Handler {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	return BasicAuth("admin", "clave-segura")(next)
}

func TestBasicAuth_ValidCredentials(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/api/admin/turnos", nil)
	req.SetBasicAuth("admin", "clave-segura")

	rr := httptest.NewRecorder()
	protected().ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
}

func TestBasicAuth_Rejections(t *testing.T) {
	cases := []struct {
		name  string
		setup func(r *http.Request)
	}{
		{"sin header", func(r *http.Request) {}},
		{"esquema equivocado", func(r *http.Request) {
			r.Header.Set("Authorization", "Bearer token")
		}},
		{"base64 inválido", func(r *http.Request) {
			r.Header.Set("Authorization", "Basic !!!")
		}},
		{"clave incorrecta", func(r *http.Request) {
			r.SetBasicAuth("admin", "otra")
		}},
		{"usuario incorrecto", func(r *http.Request) {
			r.SetBasicAuth("root", "clave-segura")
		}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/api/admin/turnos", nil)
			tc.setup(req)

			rr := httptest.NewRecorder()
			protected().ServeHTTP(rr, req)

			assert.Equal(t, http.StatusUnauthorized, rr.Code)
			assert.Equal(t, `Basic realm="Administracion"`, rr.Header().Get("WWW-Authenticate"))
		})
	}
}
