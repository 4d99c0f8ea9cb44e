package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/inkwell-blog/inkwell/internal/service"
	"github.com/inkwell-blog/inkwell/internal/transport/http/middleware"
	"github.com/inkwell-blog/inkwell/internal/transport/http/render"
	"github.com/inkwell-blog/inkwell/pkg/validator"
)

type AuthHandler struct {
	authService *service.AuthService
}

func NewAuthHandler(authService *service.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// signUpForm echoes submitted values back into the form. Passwords are
// never echoed.
type signUpForm struct {
	FirstName string
	LastName  string
	Username  string
	Email     string
}

type logInForm struct {
	Email string
}

func (h *AuthHandler) SignUpForm(w http.ResponseWriter, r *http.Request) {
	if _, ok := middleware.UserID(r.Context()); ok {
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}
	render.HTML(w, http.StatusOK, "sign_up.html", map[string]any{
		"Error": "",
		"Data":  signUpForm{},
	})
}

func (h *AuthHandler) SignUp(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form", http.StatusBadRequest)
		return
	}

	form := signUpForm{
		FirstName: r.PostFormValue("firstName"),
		LastName:  r.PostFormValue("lastName"),
		Username:  r.PostFormValue("userName"),
		Email:     r.PostFormValue("email"),
	}
	password := r.PostFormValue("password")
	confirm := r.PostFormValue("confirmPassword")

	if errs := validator.ValidateSignUp(form.FirstName, form.LastName, form.Username, form.Email, password, confirm); errs.HasErrors() {
		render.HTML(w, http.StatusUnprocessableEntity, "sign_up.html", map[string]any{
			"Error": errs.First(),
			"Data":  form,
		})
		return
	}

	resp, err := h.authService.Register(r.Context(), service.RegisterInput{
		FirstName: form.FirstName,
		LastName:  form.LastName,
		Username:  form.Username,
		Email:     form.Email,
		Password:  password,
	})
	if err != nil {
		var message string
		status := http.StatusUnprocessableEntity
		switch {
		case errors.Is(err, service.ErrEmailTaken):
			message = "Email already taken!"
		case errors.Is(err, service.ErrUsernameTaken):
			message = "Username already taken!"
		default:
			log.Printf("ERROR sign-up: %v", err)
			message = "Oops something went wrong!"
			status = http.StatusInternalServerError
		}
		render.HTML(w, status, "sign_up.html", map[string]any{
			"Error": message,
			"Data":  form,
		})
		return
	}

	setSessionCookie(w, resp.AccessToken, h.authService.TokenTTL())
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func (h *AuthHandler) LogInForm(w http.ResponseWriter, r *http.Request) {
	if _, ok := middleware.UserID(r.Context()); ok {
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}
	render.HTML(w, http.StatusOK, "log_in.html", map[string]any{
		"Error": "",
		"Data":  logInForm{},
	})
}

func (h *AuthHandler) LogIn(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form", http.StatusBadRequest)
		return
	}

	email := r.PostFormValue("email")
	password := r.PostFormValue("password")

	if errs := validator.ValidateLogIn(email, password); errs.HasErrors() {
		render.HTML(w, http.StatusUnauthorized, "log_in.html", map[string]any{
			"Error": errs.First(),
			"Data":  logInForm{Email: email},
		})
		return
	}

	resp, err := h.authService.Login(r.Context(), service.LoginInput{Email: email, Password: password})
	if err != nil {
		// One message for unknown email and wrong password alike.
		if !errors.Is(err, service.ErrInvalidCredentials) {
			log.Printf("ERROR log-in: %v", err)
		}
		render.HTML(w, http.StatusUnauthorized, "log_in.html", map[string]any{
			"Error": "Invalid email or password!",
			"Data":  logInForm{Email: email},
		})
		return
	}

	setSessionCookie(w, resp.AccessToken, h.authService.TokenTTL())
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func (h *AuthHandler) LogOut(w http.ResponseWriter, r *http.Request) {
	clearSessionCookie(w)
	http.Redirect(w, r, "/", http.StatusSeeOther)
}
