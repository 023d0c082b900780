package email

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/gearguard/gearguard/internal/shared/services/markdown"
)

//go:embed templates/*.html
var templateFS embed.FS

// MaxOverdueRows caps the table in the overdue alert; the headline still shows the full count.
const MaxOverdueRows = 10

type Recipient struct {
	Email string
	Name  string
}

type AssignmentView struct {
	TechnicianName    string
	Subject           string
	Priority          string
	Type              string
	Stage             string
	EquipmentName     string
	EquipmentLocation string
	ScheduledDate     string
	// Description is markdown; it is rendered and sanitized before embedding.
	Description string
}

type OverdueRow struct {
	Subject       string
	EquipmentName string
	Priority      string
	AssigneeName  string
}

type ManagerDigestView struct {
	Date            string
	PendingCount    int
	NewCount        int
	InProgressCount int
	OverdueCount    int
}

type TechnicianTask struct {
	Subject       string
	EquipmentName string
	Priority      string
	Stage         string
}

// Renderer turns lifecycle events into ready-to-send messages.
type Renderer struct {
	tmpl        *template.Template
	markdown    markdown.Renderer
	frontendURL string
}

func NewRenderer(frontendURL string, md markdown.Renderer) (*Renderer, error) {
	tmpl, err := template.New("email").Funcs(template.FuncMap{
		"stageLabel":    StageLabel,
		"priorityColor": priorityColor,
	}).ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("failed to parse email templates: %w", err)
	}
	return &Renderer{
		tmpl:        tmpl,
		markdown:    md,
		frontendURL: strings.TrimRight(frontendURL, "/"),
	}, nil
}

func (r *Renderer) Assignment(to Recipient, v AssignmentView) (*Message, error) {
	description, err := r.markdown.ToSafeHTML(v.Description)
	if err != nil {
		return nil, fmt.Errorf("failed to render description: %w", err)
	}

	data := struct {
		AssignmentView
		Description template.HTML
		URL         string
	}{
		AssignmentView: v,
		Description:    template.HTML(description),
		URL:            r.frontendURL + "/technician/requests",
	}
	return r.render(KindAssignment, to, "🔧 New Assignment: "+v.Subject, "assignment", data)
}

func (r *Renderer) OverdueAlert(to Recipient, total int, rows []OverdueRow) (*Message, error) {
	if len(rows) > MaxOverdueRows {
		rows = rows[:MaxOverdueRows]
	}
	data := struct {
		RecipientName string
		Total         int
		Rows          []OverdueRow
		URL           string
	}{to.Name, total, rows, r.frontendURL + "/admin/requests"}

	subject := fmt.Sprintf("⚠️ Alert: %d Overdue Maintenance Requests", total)
	return r.render(KindOverdueAlert, to, subject, "overdue_alert", data)
}

func (r *Renderer) ManagerDigest(to Recipient, v ManagerDigestView) (*Message, error) {
	data := struct {
		ManagerDigestView
		RecipientName string
		URL           string
	}{v, to.Name, r.frontendURL + "/admin/dashboard"}

	subject := fmt.Sprintf("📋 Daily Digest: %d Pending Maintenance Requests", v.PendingCount)
	return r.render(KindManagerDigest, to, subject, "manager_digest", data)
}

func (r *Renderer) TechnicianDigest(to Recipient, tasks []TechnicianTask) (*Message, error) {
	data := struct {
		RecipientName string
		Tasks         []TechnicianTask
		URL           string
	}{to.Name, tasks, r.frontendURL + "/technician/requests"}

	subject := fmt.Sprintf("📋 Your Daily Tasks: %d Pending Requests", len(tasks))
	return r.render(KindTechnicianDigest, to, subject, "technician_digest", data)
}

// Notification mirrors an in-app notification by email.
func (r *Renderer) Notification(to Recipient, title, message string) (*Message, error) {
	data := struct {
		RecipientName string
		Title         string
		Message       string
		URL           string
	}{to.Name, title, message, r.frontendURL}

	msg, err := r.render(KindNotification, to, "GearGuard - "+title, "notification", data)
	if err != nil {
		return nil, err
	}
	msg.TextBody = message
	return msg, nil
}

func (r *Renderer) render(kind Kind, to Recipient, subject, name string, data any) (*Message, error) {
	if to.Email == "" {
		return nil, fmt.Errorf("recipient email is required")
	}
	var buf bytes.Buffer
	if err := r.tmpl.ExecuteTemplate(&buf, name, data); err != nil {
		return nil, fmt.Errorf("failed to render %s email: %w", name, err)
	}
	return newMessage(kind, to.Email, to.Name, subject, buf.String()), nil
}

// StageLabel turns IN_PROGRESS into "In Progress".
func StageLabel(stage string) string {
	return cases.Title(language.English).String(strings.ReplaceAll(strings.ToLower(stage), "_", " "))
}

func priorityColor(priority string) template.CSS {
	switch priority {
	case "CRITICAL":
		return "#dc2626"
	case "HIGH":
		return "#f59e0b"
	default:
		return "#3b82f6"
	}
}
