package http

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"fittrack/internal/auth"
	"fittrack/internal/domain"
	"fittrack/internal/service"
)

const dateLayout = "2006-01-02"

// Handler wires HTTP routes to domain services.
type Handler struct {
	users    service.UserService
	records  service.RecordService
	sessions *auth.Sessions
	logger   *logrus.Logger
}

func NewHandler(users service.UserService, records service.RecordService, sessions *auth.Sessions, logger *logrus.Logger) *Handler {
	return &Handler{
		users:    users,
		records:  records,
		sessions: sessions,
		logger:   logger,
	}
}

func (h *Handler) RegisterRoutes(router *gin.Engine) {
	router.GET("/", h.home)
	router.GET("/register", h.registerForm)
	router.POST("/register", h.register)
	router.GET("/login", h.loginForm)
	router.POST("/login", h.login)

	protected := router.Group("/")
	protected.Use(RequireAuth(h.sessions))
	{
		protected.GET("/logout", h.logout)
		protected.GET("/dashboard", h.dashboard)
		protected.GET("/add_workout", h.workoutForm)
		protected.POST("/add_workout", h.addWorkout)
		protected.GET("/add_hydration", h.hydrationForm)
		protected.POST("/add_hydration", h.addHydration)
		protected.GET("/add_symptom", h.symptomForm)
		protected.POST("/add_symptom", h.addSymptom)
		protected.GET("/add_period", h.periodForm)
		protected.POST("/add_period", h.addPeriod)
	}
}

// render injects the pending flash message into every page.
func (h *Handler) render(c *gin.Context, name string, data gin.H) {
	if data == nil {
		data = gin.H{}
	}
	if _, ok := data["Flash"]; !ok {
		data["Flash"] = takeFlash(c)
	}
	c.HTML(http.StatusOK, name, data)
}

// renderWithFlash re-renders a form in the same request, e.g. after a
// validation failure, without a cookie round trip.
func (h *Handler) renderWithFlash(c *gin.Context, name, category, message string) {
	h.render(c, name, gin.H{"Flash": &Flash{Category: category, Message: message}})
}

func (h *Handler) fail(c *gin.Context, err error) {
	h.logger.WithError(err).Error("request failed")
	c.HTML(http.StatusInternalServerError, "error.html", gin.H{
		"Flash": &Flash{Category: "danger", Message: "Something went wrong. Please try again."},
	})
	c.Abort()
}

func (h *Handler) home(c *gin.Context) {
	h.render(c, "home.html", nil)
}

func (h *Handler) registerForm(c *gin.Context) {
	h.render(c, "register.html", nil)
}

type registerRequest struct {
	Name     string  `form:"name" binding:"required"`
	Gender   string  `form:"gender" binding:"required"`
	DOB      string  `form:"dob" binding:"required"`
	Height   float64 `form:"height" binding:"required,gt=0"`
	Weight   float64 `form:"weight" binding:"required,gt=0"`
	Service  string  `form:"service" binding:"required"`
	Password string  `form:"password" binding:"required"`
}

func (h *Handler) register(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBind(&req); err != nil {
		h.renderWithFlash(c, "register.html", "danger", "Please check the submitted fields")
		return
	}

	dob, err := time.Parse(dateLayout, req.DOB)
	if err != nil {
		h.renderWithFlash(c, "register.html", "danger", "Date of birth must be YYYY-MM-DD")
		return
	}

	_, err = h.users.Register(c.Request.Context(), service.RegisterInput{
		Name:     req.Name,
		Gender:   req.Gender,
		DOB:      dob,
		Height:   req.Height,
		Weight:   req.Weight,
		Service:  req.Service,
		Password: req.Password,
	})
	switch {
	case errors.Is(err, domain.ErrNameTaken):
		h.renderWithFlash(c, "register.html", "danger", "That name is already taken")
		return
	case errors.Is(err, domain.ErrValidation):
		h.renderWithFlash(c, "register.html", "danger", validationMessage(err))
		return
	case err != nil:
		h.fail(c, err)
		return
	}

	setFlash(c, "success", "Registration Successful!")
	c.Redirect(http.StatusSeeOther, "/login")
}

func (h *Handler) loginForm(c *gin.Context) {
	h.render(c, "login.html", nil)
}

type loginRequest struct {
	Name     string `form:"name" binding:"required"`
	Password string `form:"password" binding:"required"`
}

func (h *Handler) login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBind(&req); err != nil {
		h.renderWithFlash(c, "login.html", "danger", "Login Failed. Please check your name and password")
		return
	}

	user, err := h.users.Authenticate(c.Request.Context(), req.Name, req.Password)
	switch {
	case errors.Is(err, domain.ErrInvalidCredentials):
		h.renderWithFlash(c, "login.html", "danger", "Login Failed. Please check your name and password")
		return
	case err != nil:
		h.fail(c, err)
		return
	}

	token, err := h.sessions.Issue(user.ID)
	if err != nil {
		h.fail(c, err)
		return
	}

	c.SetCookie(auth.CookieName, token, int(h.sessions.TTL().Seconds()), "/", "", false, true)
	c.Redirect(http.StatusSeeOther, "/dashboard")
}

func (h *Handler) logout(c *gin.Context) {
	c.SetCookie(auth.CookieName, "", -1, "/", "", false, true)
	c.Redirect(http.StatusSeeOther, "/")
}

func (h *Handler) dashboard(c *gin.Context) {
	userID := currentUserID(c)

	user, err := h.users.GetByID(c.Request.Context(), userID)
	if err != nil {
		h.fail(c, err)
		return
	}

	dash, err := h.records.ListForUser(c.Request.Context(), userID)
	if err != nil {
		h.fail(c, err)
		return
	}

	h.render(c, "dashboard.html", gin.H{
		"Name":       user.Name,
		"Workouts":   workoutsToView(dash.Workouts),
		"Hydrations": hydrationsToView(dash.Hydrations),
		"Symptoms":   symptomsToView(dash.Symptoms),
		"Periods":    periodsToView(dash.Periods),
	})
}

func (h *Handler) workoutForm(c *gin.Context) {
	h.render(c, "add_workout.html", nil)
}

type workoutRequest struct {
	WorkoutType string `form:"workout_type" binding:"required"`
	Duration    int    `form:"duration" binding:"required"`
}

func (h *Handler) addWorkout(c *gin.Context) {
	var req workoutRequest
	if err := c.ShouldBind(&req); err != nil {
		h.renderWithFlash(c, "add_workout.html", "danger", "Workout type and a numeric duration are required")
		return
	}

	_, err := h.records.AddWorkout(c.Request.Context(), currentUserID(c), req.WorkoutType, req.Duration)
	switch {
	case errors.Is(err, domain.ErrValidation):
		h.renderWithFlash(c, "add_workout.html", "danger", validationMessage(err))
		return
	case err != nil:
		h.fail(c, err)
		return
	}

	setFlash(c, "success", "Workout added successfully!")
	c.Redirect(http.StatusSeeOther, "/dashboard")
}

func (h *Handler) hydrationForm(c *gin.Context) {
	h.render(c, "add_hydration.html", nil)
}

type hydrationRequest struct {
	WaterIntake float64 `form:"water_intake" binding:"required"`
}

func (h *Handler) addHydration(c *gin.Context) {
	var req hydrationRequest
	if err := c.ShouldBind(&req); err != nil {
		h.renderWithFlash(c, "add_hydration.html", "danger", "Water intake must be a number")
		return
	}

	_, err := h.records.AddHydration(c.Request.Context(), currentUserID(c), req.WaterIntake)
	switch {
	case errors.Is(err, domain.ErrValidation):
		h.renderWithFlash(c, "add_hydration.html", "danger", validationMessage(err))
		return
	case err != nil:
		h.fail(c, err)
		return
	}

	setFlash(c, "success", "Hydration added successfully!")
	c.Redirect(http.StatusSeeOther, "/dashboard")
}

func (h *Handler) symptomForm(c *gin.Context) {
	h.render(c, "add_symptom.html", nil)
}

type symptomRequest struct {
	Description string `form:"description" binding:"required"`
}

func (h *Handler) addSymptom(c *gin.Context) {
	var req symptomRequest
	if err := c.ShouldBind(&req); err != nil {
		h.renderWithFlash(c, "add_symptom.html", "danger", "Description is required")
		return
	}

	_, err := h.records.AddSymptom(c.Request.Context(), currentUserID(c), req.Description)
	switch {
	case errors.Is(err, domain.ErrValidation):
		h.renderWithFlash(c, "add_symptom.html", "danger", validationMessage(err))
		return
	case err != nil:
		h.fail(c, err)
		return
	}

	setFlash(c, "success", "Symptom added successfully!")
	c.Redirect(http.StatusSeeOther, "/dashboard")
}

func (h *Handler) periodForm(c *gin.Context) {
	h.render(c, "add_period.html", nil)
}

type periodRequest struct {
	StartDate string `form:"start_date" binding:"required"`
	EndDate   string `form:"end_date" binding:"required"`
}

func (h *Handler) addPeriod(c *gin.Context) {
	var req periodRequest
	if err := c.ShouldBind(&req); err != nil {
		h.renderWithFlash(c, "add_period.html", "danger", "Start and end dates are required")
		return
	}

	start, err := time.Parse(dateLayout, req.StartDate)
	if err != nil {
		h.renderWithFlash(c, "add_period.html", "danger", "Start date must be YYYY-MM-DD")
		return
	}
	end, err := time.Parse(dateLayout, req.EndDate)
	if err != nil {
		h.renderWithFlash(c, "add_period.html", "danger", "End date must be YYYY-MM-DD")
		return
	}

	_, err = h.records.AddPeriod(c.Request.Context(), currentUserID(c), start, end)
	switch {
	case errors.Is(err, domain.ErrValidation):
		h.renderWithFlash(c, "add_period.html", "danger", validationMessage(err))
		return
	case err != nil:
		h.fail(c, err)
		return
	}

	setFlash(c, "success", "Period details added successfully!")
	c.Redirect(http.StatusSeeOther, "/dashboard")
}

// validationMessage strips the sentinel prefix so the flash reads naturally.
func validationMessage(err error) string {
	msg := err.Error()
	if rest, ok := strings.CutPrefix(msg, domain.ErrValidation.Error()+": "); ok {
		return rest
	}
	return msg
}

type WorkoutView struct {
	Date        string
	WorkoutType string
	Duration    int
}

type HydrationView struct {
	Date        string
	WaterIntake float64
}

type SymptomView struct {
	Date        string
	Description string
}

type PeriodView struct {
	StartDate string
	EndDate   string
}

func workoutsToView(workouts []domain.Workout) []WorkoutView {
	views := make([]WorkoutView, len(workouts))
	for i, w := range workouts {
		views[i] = WorkoutView{
			Date:        w.Date.Format(dateLayout),
			WorkoutType: w.WorkoutType,
			Duration:    w.Duration,
		}
	}
	return views
}

func hydrationsToView(hydrations []domain.Hydration) []HydrationView {
	views := make([]HydrationView, len(hydrations))
	for i, h := range hydrations {
		views[i] = HydrationView{
			Date:        h.Date.Format(dateLayout),
			WaterIntake: h.WaterIntake,
		}
	}
	return views
}

func symptomsToView(symptoms []domain.Symptom) []SymptomView {
	views := make([]SymptomView, len(symptoms))
	for i, s := range symptoms {
		views[i] = SymptomView{
			Date:        s.Date.Format(dateLayout),
			Description: s.Description,
		}
	}
	return views
}

func periodsToView(periods []domain.Period) []PeriodView {
	views := make([]PeriodView, len(periods))
	for i, p := range periods {
		views[i] = PeriodView{
			StartDate: p.StartDate.Format(dateLayout),
			EndDate:   p.EndDate.Format(dateLayout),
		}
	}
	return views
}
