package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
)

// Output handles formatting output based on the configured format
type Output struct {
	format string
}

// NewOutput creates a new Output formatter
func NewOutput(format string) *Output {
	return &Output{format: format}
}

// Print outputs data in the configured format
func (o *Output) Print(data any) {
	if o.format == "json" {
		o.printJSON(data)
	} else {
		o.printText(data)
	}
}

// PrintError outputs an error
func (o *Output) PrintError(err error) {
	if o.format == "json" {
		errData := map[string]any{
			"error": map[string]string{
				"message": err.Error(),
			},
		}
		data, _ := json.Marshal(errData)
		fmt.Fprintln(os.Stderr, string(data))
	} else {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
	}
}

// PrintMessage outputs a simple message
func (o *Output) PrintMessage(msg string) {
	if o.format == "json" {
		data, _ := json.Marshal(map[string]string{"message": msg})
		fmt.Println(string(data))
	} else {
		fmt.Println(msg)
	}
}

func (o *Output) printJSON(data any) {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	_ = enc.Encode(data)
}

func (o *Output) printText(data any) {
	switch v := data.(type) {
	case User:
		o.printUser(v)
	case []User:
		o.printUsers(v)
	case AuthResult:
		o.printAuthResult(v)
	case LogoutResult:
		o.printLogoutResult(v)
	case WizardState:
		o.printWizardState(v)
	case RegisterResult:
		o.printRegisterResult(v)
	case UserStats:
		o.printUserStats(v)
	case Tournament:
		o.printTournament(v)
	case []Tournament:
		for i := range v {
			if i > 0 {
				fmt.Println()
			}
			o.printTournament(v[i])
		}
	case News:
		o.printNews(v)
	case []News:
		for i := range v {
			if i > 0 {
				fmt.Println()
			}
			o.printNews(v[i])
		}
	case HealthResult:
		o.printHealthResult(v)
	default:
		// Fallback to JSON for unknown types
		o.printJSON(data)
	}
}

// User response type (matches API)
type User struct {
	ID        string `json:"id"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Role      struct {
		Title string `json:"title"`
	} `json:"role"`
	City     string `json:"city"`
	IsActive bool   `json:"isActive"`
}

// AuthResult combines user and session token
type AuthResult struct {
	SessionToken string `json:"session_token"`
	User         User   `json:"user"`
}

// Navigation response type
type Navigation struct {
	RedirectTo string `json:"redirectTo"`
	Hard       bool   `json:"hard,omitempty"`
}

// LogoutResult response type
type LogoutResult struct {
	Navigation Navigation `json:"navigation"`
}

// WizardState response type
type WizardState struct {
	CurrentStep    string          `json:"current_step"`
	StepOrder      []string        `json:"step_order"`
	CompletedSteps []string        `json:"completed_steps"`
	Draft          json.RawMessage `json:"draft"`

	LicenseNumberDisabled  bool `json:"license_number_disabled"`
	LicenseUnknownDisabled bool `json:"license_unknown_disabled"`
}

// RegisterResult response type
type RegisterResult struct {
	SessionToken string     `json:"session_token"`
	User         User       `json:"user"`
	Navigation   Navigation `json:"navigation"`
}

// UserStats response type
type UserStats struct {
	TotalUsers      int `json:"totalUsers"`
	ActiveUsers     int `json:"activeUsers"`
	PendingApproval int `json:"pendingApproval"`
	Admins          int `json:"admins"`
}

// Tournament response type
type Tournament struct {
	ID        int    `json:"id"`
	Name      string `json:"name"`
	Location  string `json:"location"`
	StartDate string `json:"startDate"`
	EndDate   string `json:"endDate"`
	Status    string `json:"status"`
}

// News response type
type News struct {
	ID          int    `json:"id"`
	Title       string `json:"title"`
	Content     string `json:"content"`
	Author      string `json:"author,omitempty"`
	PublishedAt string `json:"publishedAt"`
}

// HealthResult response type
type HealthResult struct {
	Status string `json:"status"`
}

func (o *Output) printUser(u User) {
	activeStr := "no"
	if u.IsActive {
		activeStr = "yes"
	}
	fmt.Printf("User: %s %s (%s)\n", u.FirstName, u.LastName, u.ID)
	fmt.Printf("Email: %s\n", u.Email)
	fmt.Printf("Role: %s\n", u.Role.Title)
	if u.City != "" {
		fmt.Printf("City: %s\n", u.City)
	}
	fmt.Printf("Active: %s\n", activeStr)
}

func (o *Output) printUsers(users []User) {
	fmt.Printf("Users (%d):\n", len(users))
	for _, u := range users {
		status := "pending"
		if u.IsActive {
			status = "active"
		}
		fmt.Printf("  - %s %s <%s> - %s [%s]\n", u.FirstName, u.LastName, u.Email, u.Role.Title, status)
	}
}

func (o *Output) printAuthResult(a AuthResult) {
	o.printUser(a.User)
	fmt.Printf("Token: %s\n", a.SessionToken)
}

func (o *Output) printLogoutResult(l LogoutResult) {
	fmt.Println("Logged out")
	fmt.Printf("Redirect: %s\n", l.Navigation.RedirectTo)
}

func (o *Output) printWizardState(w WizardState) {
	fmt.Printf("Step: %s (of %s)\n", w.CurrentStep, strings.Join(w.StepOrder, " > "))
	if len(w.CompletedSteps) > 0 {
		fmt.Printf("Completed: %s\n", strings.Join(w.CompletedSteps, ", "))
	}

	// Pretty-print the draft fields that are set
	var draft map[string]any
	if err := json.Unmarshal(w.Draft, &draft); err == nil {
		keys := make([]string, 0, len(draft))
		for k, v := range draft {
			switch val := v.(type) {
			case string:
				if val != "" {
					keys = append(keys, fmt.Sprintf("%s=%s", k, val))
				}
			case bool:
				if val {
					keys = append(keys, fmt.Sprintf("%s=true", k))
				}
			}
		}
		if len(keys) > 0 {
			fmt.Printf("Draft: %s\n", strings.Join(keys, ", "))
		}
	}

	if w.LicenseNumberDisabled {
		fmt.Println("License number input: disabled")
	}
}

func (o *Output) printRegisterResult(r RegisterResult) {
	fmt.Println("Registration submitted")
	o.printUser(r.User)
	fmt.Printf("Token: %s\n", r.SessionToken)
	fmt.Printf("Redirect: %s\n", r.Navigation.RedirectTo)
}

func (o *Output) printUserStats(s UserStats) {
	fmt.Printf("Total users: %d\n", s.TotalUsers)
	fmt.Printf("Active: %d\n", s.ActiveUsers)
	fmt.Printf("Pending approval: %d\n", s.PendingApproval)
	fmt.Printf("Admins: %d\n", s.Admins)
}

func (o *Output) printTournament(t Tournament) {
	fmt.Printf("Tournament: %s (#%d)\n", t.Name, t.ID)
	fmt.Printf("Location: %s\n", t.Location)
	fmt.Printf("Dates: %s to %s\n", t.StartDate, t.EndDate)
	fmt.Printf("Status: %s\n", t.Status)
}

func (o *Output) printNews(n News) {
	fmt.Printf("News: %s (#%d)\n", n.Title, n.ID)
	if n.Author != "" {
		fmt.Printf("Author: %s\n", n.Author)
	}
	fmt.Printf("Published: %s\n", n.PublishedAt)
	fmt.Printf("%s\n", n.Content)
}

func (o *Output) printHealthResult(h HealthResult) {
	fmt.Printf("Status: %s\n", h.Status)
}
