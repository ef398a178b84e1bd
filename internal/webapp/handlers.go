// File: internal/webapp/handlers.go
package webapp

import (
	"net/http"
	"sort"
	"strconv"
	"strings"

	"inventario-lab/internal/model"
)

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	if _, ok := s.currentUser(r); ok {
		http.Redirect(w, r, "/equipos", http.StatusSeeOther)
		return
	}
	s.render(w, "login.html", map[string]any{
		"Flashes": s.takeFlashes(w, r),
	})
}

func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}
	if err := r.ParseForm(); err != nil {
		http.Error(w, "formulario inválido", http.StatusBadRequest)
		return
	}

	resp, err := s.api.Login(strings.TrimSpace(r.FormValue("username")), r.FormValue("password"))
	if err != nil {
		s.flash(w, r, "error", "Error de login: "+err.Error())
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}

	sess, _ := s.store.Get(r, sessionName)
	sess.Values["user_id"] = resp.User.ID
	sess.Values["username"] = resp.User.Username
	sess.Values["nombre_completo"] = resp.User.FullName
	sess.Values["tipo_usuario"] = resp.User.Role
	if err := sess.Save(r, w); err != nil {
		http.Error(w, "no se pudo guardar la sesión", http.StatusInternalServerError)
		return
	}

	s.flash(w, r, "success", "¡Bienvenido "+resp.User.FullName+"!")
	http.Redirect(w, r, "/equipos", http.StatusSeeOther)
}

func (s *Server) handleLogout(w http.ResponseWriter, r *http.Request) {
	sess, _ := s.store.Get(r, sessionName)
	sess.Options.MaxAge = -1
	_ = sess.Save(r, w)
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func (s *Server) handleEquipos(w http.ResponseWriter, r *http.Request) {
	user, ok := s.currentUser(r)
	if !ok {
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}

	equipos, err := s.api.Equipos()
	if err != nil {
		s.flash(w, r, "error", "Error cargando equipos: "+err.Error())
	}

	s.render(w, "equipos.html", map[string]any{
		"User":    user,
		"Equipos": equipos,
		"Flashes": s.takeFlashes(w, r),
	})
}

func (s *Server) handleAgregarEquipo(w http.ResponseWriter, r *http.Request) {
	user, ok := s.currentUser(r)
	if !ok {
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}
	if !user.IsAdmin() {
		s.flash(w, r, "error", "No tienes permisos para agregar equipos")
		http.Redirect(w, r, "/equipos", http.StatusSeeOther)
		return
	}
	if r.Method != http.MethodPost {
		http.Redirect(w, r, "/equipos", http.StatusSeeOther)
		return
	}
	if err := r.ParseForm(); err != nil {
		http.Error(w, "formulario inválido", http.StatusBadRequest)
		return
	}

	err := s.api.CrearEquipo(r.FormValue("nombre"), r.FormValue("descripcion"), r.FormValue("estado"))
	if err != nil {
		s.flash(w, r, "error", "Error: "+err.Error())
	} else {
		s.flash(w, r, "success", "Equipo agregado correctamente")
	}
	http.Redirect(w, r, "/equipos", http.StatusSeeOther)
}

func (s *Server) handleEliminarEquipo(w http.ResponseWriter, r *http.Request) {
	user, ok := s.currentUser(r)
	if !ok {
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}
	if !user.IsAdmin() {
		s.flash(w, r, "error", "No tienes permisos para eliminar equipos")
		http.Redirect(w, r, "/equipos", http.StatusSeeOther)
		return
	}

	id, err := strconv.Atoi(strings.TrimPrefix(r.URL.Path, "/equipos/eliminar/"))
	if err != nil {
		http.NotFound(w, r)
		return
	}

	if err := s.api.EliminarEquipo(id); err != nil {
		s.flash(w, r, "error", "Error: "+err.Error())
	} else {
		s.flash(w, r, "success", "Equipo eliminado correctamente")
	}
	http.Redirect(w, r, "/equipos", http.StatusSeeOther)
}

func (s *Server) handlePrestamos(w http.ResponseWriter, r *http.Request) {
	user, ok := s.currentUser(r)
	if !ok {
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}

	disponibles, err := s.api.EquiposDisponibles()
	if err != nil {
		s.flash(w, r, "error", "Error cargando equipos: "+err.Error())
	}
	prestamos, err := s.api.PrestamosUsuario(user.ID)
	if err != nil {
		s.flash(w, r, "error", "Error cargando préstamos: "+err.Error())
	}

	s.render(w, "prestamos.html", map[string]any{
		"User":        user,
		"Disponibles": disponibles,
		"Prestamos":   prestamos,
		"Flashes":     s.takeFlashes(w, r),
	})
}

func (s *Server) handleSolicitarPrestamo(w http.ResponseWriter, r *http.Request) {
	user, ok := s.currentUser(r)
	if !ok {
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}
	if r.Method != http.MethodPost {
		http.Redirect(w, r, "/prestamos", http.StatusSeeOther)
		return
	}
	if err := r.ParseForm(); err != nil {
		http.Error(w, "formulario inválido", http.StatusBadRequest)
		return
	}

	equipoID, err := strconv.Atoi(r.FormValue("equipo_id"))
	if err != nil {
		s.flash(w, r, "error", "Equipo inválido")
		http.Redirect(w, r, "/prestamos", http.StatusSeeOther)
		return
	}

	if err := s.api.CrearPrestamo(equipoID, user.ID, r.FormValue("motivo")); err != nil {
		s.flash(w, r, "error", "Error: "+err.Error())
	} else {
		s.flash(w, r, "success", "Préstamo solicitado correctamente")
	}
	http.Redirect(w, r, "/prestamos", http.StatusSeeOther)
}

func (s *Server) handleDevolverPrestamo(w http.ResponseWriter, r *http.Request) {
	if _, ok := s.currentUser(r); !ok {
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}

	id, err := strconv.Atoi(strings.TrimPrefix(r.URL.Path, "/prestamos/devolver/"))
	if err != nil {
		http.NotFound(w, r)
		return
	}

	if err := s.api.DevolverPrestamo(id); err != nil {
		s.flash(w, r, "error", "Error: "+err.Error())
	} else {
		s.flash(w, r, "success", "Equipo devuelto correctamente")
	}
	http.Redirect(w, r, "/prestamos", http.StatusSeeOther)
}

// handleHistorial shows admins the full trail. A standard user gets a
// personal view assembled from the histories of the equipment they
// have borrowed, keeping only entries they are responsible for.
func (s *Server) handleHistorial(w http.ResponseWriter, r *http.Request) {
	user, ok := s.currentUser(r)
	if !ok {
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}

	var (
		historial []model.HistoryEntry
		titulo    string
		err       error
	)
	if user.IsAdmin() {
		titulo = "Historial Completo del Sistema"
		historial, err = s.api.Historial()
		if err != nil {
			s.flash(w, r, "error", "Error cargando historial: "+err.Error())
		}
	} else {
		titulo = "Mi Historial Personal"
		historial = s.personalHistory(user.ID)
	}

	s.render(w, "historial.html", map[string]any{
		"User":      user,
		"Titulo":    titulo,
		"Historial": historial,
		"Flashes":   s.takeFlashes(w, r),
	})
}

func (s *Server) personalHistory(userID int) []model.HistoryEntry {
	prestamos, err := s.api.PrestamosUsuario(userID)
	if err != nil {
		return nil
	}

	seen := map[int]bool{}
	var historial []model.HistoryEntry
	for _, p := range prestamos {
		if seen[p.EquipmentID] {
			continue
		}
		seen[p.EquipmentID] = true

		entries, err := s.api.HistorialEquipo(p.EquipmentID)
		if err != nil {
			continue
		}
		for _, h := range entries {
			if h.UserID != nil && *h.UserID == userID {
				historial = append(historial, h)
			}
		}
	}

	sort.Slice(historial, func(i, j int) bool {
		return historial[i].ChangedAt.After(historial[j].ChangedAt)
	})
	return historial
}
