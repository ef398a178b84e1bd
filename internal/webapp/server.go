// File: internal/webapp/server.go
package webapp

import (
	"embed"
	"html/template"
	"net/http"

	"github.com/gorilla/sessions"
)

//go:embed templates/*.html
var templatesFS embed.FS

const sessionName = "inventario-session"

// Server renders the UI and drives the API service. All state lives
// in the cookie session and in the API; the server itself holds none.
type Server struct {
	api   *Client
	store *sessions.CookieStore
	tmpl  *template.Template
}

func NewServer(apiURL, sessionSecret string) *Server {
	return &Server{
		api:   NewClient(apiURL),
		store: sessions.NewCookieStore([]byte(sessionSecret)),
		tmpl:  template.Must(template.ParseFS(templatesFS, "templates/*.html")),
	}
}

// Routes wires every page and action.
func (s *Server) Routes() *http.ServeMux {
	mux := http.NewServeMux()
	mux.HandleFunc("/", s.handleIndex)
	mux.HandleFunc("/login", s.handleLogin)
	mux.HandleFunc("/logout", s.handleLogout)
	mux.HandleFunc("/equipos", s.handleEquipos)
	mux.HandleFunc("/equipos/agregar", s.handleAgregarEquipo)
	mux.HandleFunc("/equipos/eliminar/", s.handleEliminarEquipo)
	mux.HandleFunc("/prestamos", s.handlePrestamos)
	mux.HandleFunc("/solicitar_prestamo", s.handleSolicitarPrestamo)
	mux.HandleFunc("/prestamos/devolver/", s.handleDevolverPrestamo)
	mux.HandleFunc("/historial", s.handleHistorial)
	return mux
}

// sessionUser is what the login flow stashes in the cookie session.
type sessionUser struct {
	ID       int
	Username string
	FullName string
	Role     string
}

func (u sessionUser) IsAdmin() bool { return u.Role == "admin" }

// currentUser pulls the logged-in user out of the session, reporting
// whether there is one.
func (s *Server) currentUser(r *http.Request) (sessionUser, bool) {
	sess, _ := s.store.Get(r, sessionName)
	id, ok := sess.Values["user_id"].(int)
	if !ok || id == 0 {
		return sessionUser{}, false
	}
	username, _ := sess.Values["username"].(string)
	fullName, _ := sess.Values["nombre_completo"].(string)
	role, _ := sess.Values["tipo_usuario"].(string)
	return sessionUser{ID: id, Username: username, FullName: fullName, Role: role}, true
}

// flash queues a one-shot message of the given category.
func (s *Server) flash(w http.ResponseWriter, r *http.Request, category, message string) {
	sess, _ := s.store.Get(r, sessionName)
	sess.AddFlash(category + "|" + message)
	_ = sess.Save(r, w)
}

type flashMessage struct {
	Category string
	Message  string
}

// takeFlashes drains queued flash messages.
func (s *Server) takeFlashes(w http.ResponseWriter, r *http.Request) []flashMessage {
	sess, _ := s.store.Get(r, sessionName)
	raw := sess.Flashes()
	if len(raw) > 0 {
		_ = sess.Save(r, w)
	}
	var out []flashMessage
	for _, f := range raw {
		str, ok := f.(string)
		if !ok {
			continue
		}
		category, message := "info", str
		for i := 0; i < len(str); i++ {
			if str[i] == '|' {
				category, message = str[:i], str[i+1:]
				break
			}
		}
		out = append(out, flashMessage{Category: category, Message: message})
	}
	return out
}

func (s *Server) render(w http.ResponseWriter, name string, data any) {
	if err := s.tmpl.ExecuteTemplate(w, name, data); err != nil {
		http.Error(w, "error al renderizar la página", http.StatusInternalServerError)
	}
}
