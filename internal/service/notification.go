package service

import (
	"bytes"
	"context"
	"strings"
	"sync"
	"text/template"
	"time"

	"showcase-portal-backend/internal/database/models"
	"showcase-portal-backend/internal/logger"
	"showcase-portal-backend/internal/queue"
	"showcase-portal-backend/internal/repository"

	"github.com/google/uuid"
)

const emailBodyTemplate = `Dear {{.UserName}},

{{range .Lines}}{{.}}

{{end}}Have a nice day.

---

Message sent by {{.SiteTitle}} ({{.SiteURL}})`

var (
	bodyTmpl = template.Must(template.New("body").Parse(emailBodyTemplate))

	subjectTmpls = map[string]*template.Template{
		queue.EventShowcaseCreated:       template.Must(template.New("created_subject").Parse(`Reuse case '{{.Title}}' was submitted for review.`)),
		queue.EventShowcaseStatusUpdated: template.Must(template.New("status_subject").Parse(`Reuse case '{{.Title}}' status was updated.`)),
	}

	lineTmpls = map[string][]*template.Template{
		queue.EventShowcaseCreated: {
			template.Must(template.New("created_1").Parse(`{{.OpeningWord}} resuse case was submitted to Portal Supervisor for review.`)),
			template.Must(template.New("created_2").Parse(`You can check the current status of your resuse case at {{.ActionURL}}`)),
		},
		queue.EventShowcaseStatusUpdated: {
			template.Must(template.New("status_1").Parse(`Status of reuse case '{{.Title}}' was updated to {{.Status}}.`)),
			template.Must(template.New("status_2").Parse(`You can check the current status of resuse at {{.ActionURL}}`)),
		},
	}

	notificationTmpls = map[string]*template.Template{
		queue.EventShowcaseCreated:       template.Must(template.New("created_note").Parse(`{{.OpeningWord}} resuse case was submitted to the Portal Supervisor for review.`)),
		queue.EventShowcaseStatusUpdated: template.Must(template.New("status_note").Parse(`Status of reuse case '{{.Title}}' was updated to {{.Status}}.`)),
	}
)

type messageVars struct {
	UserName    string
	OpeningWord string
	Title       string
	Status      string
	ActionURL   string
	SiteTitle   string
	SiteURL     string
	Lines       []string
}

// PublishTimeout bounds a single background publish, broker reconnects included
const PublishTimeout = 5 * time.Second

// Notifier renders notification e-mails for the creator and every portal admin and publishes them
type Notifier struct {
	publisher EventPublisher
	userRepo  repository.UserRepositoryInterface
	adminRepo repository.ShowcaseAdminRepositoryInterface
	siteTitle string
	siteURL   string
	now       func() time.Time

	timeout  time.Duration
	inflight sync.WaitGroup
}

// Ensure Notifier implements NotifierInterface
var _ NotifierInterface = (*Notifier)(nil)

// NewNotifier creates a new Notifier
func NewNotifier(publisher EventPublisher, userRepo repository.UserRepositoryInterface, adminRepo repository.ShowcaseAdminRepositoryInterface, siteTitle, siteURL string) *Notifier {
	return &Notifier{
		publisher: publisher,
		userRepo:  userRepo,
		adminRepo: adminRepo,
		siteTitle: siteTitle,
		siteURL:   strings.TrimRight(siteURL, "/"),
		now:       time.Now,
		timeout:   PublishTimeout,
	}
}

// Wait blocks until every background publish has finished
func (n *Notifier) Wait() {
	n.inflight.Wait()
}

// ShowcaseCreated announces a new submission
func (n *Notifier) ShowcaseCreated(ctx context.Context, showcase *models.Package) {
	n.notify(ctx, queue.EventShowcaseCreated, showcase, models.ApprovalStatusPending)
}

// StatusUpdated announces a review decision
func (n *Notifier) StatusUpdated(ctx context.Context, showcase *models.Package, approval *models.ShowcaseApproval) {
	status := models.ApprovalStatusPending
	if approval != nil {
		status = approval.Status
	}
	n.notify(ctx, queue.EventShowcaseStatusUpdated, showcase, status)
}

// BuildEvent renders the event without publishing it
func (n *Notifier) BuildEvent(eventType string, showcase *models.Package, status models.ApprovalStatus) (*queue.Event, error) {
	title := showcase.Title
	if title == "" {
		title = showcase.Name
	}
	event := &queue.Event{
		ID:         uuid.NewString(),
		Type:       eventType,
		ShowcaseID: showcase.ID.String(),
		Title:      title,
		Status:     string(status),
		ActionURL:  n.siteURL + "/showcase/" + showcase.ID.String(),
		OccurredAt: n.now().UTC(),
	}

	recipients, err := n.recipients(showcase)
	if err != nil {
		return nil, err
	}

	for _, r := range recipients {
		vars := messageVars{
			UserName:    r.user.DisplayName(),
			OpeningWord: r.openingWord,
			Title:       title,
			Status:      status.Label(),
			ActionURL:   event.ActionURL,
			SiteTitle:   n.siteTitle,
			SiteURL:     n.siteURL,
		}
		msg, err := renderMessage(eventType, vars)
		if err != nil {
			return nil, err
		}
		msg.UserID = r.user.ID.String()
		msg.To = r.user.Email
		msg.Name = r.user.DisplayName()
		event.Messages = append(event.Messages, *msg)
	}
	return event, nil
}

func (n *Notifier) notify(ctx context.Context, eventType string, showcase *models.Package, status models.ApprovalStatus) {
	log := logger.WithContext(ctx).WithFields(map[string]interface{}{
		"event":       eventType,
		"showcase_id": showcase.ID.String(),
	})

	event, err := n.BuildEvent(eventType, showcase, status)
	if err != nil {
		log.Errorf("failed to build notification: %v", err)
		return
	}
	if n.publisher == nil {
		return
	}

	// the request must not wait on the broker, and its cancellation must not drop the event
	pubCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), n.timeout)
	n.inflight.Add(1)
	go func() {
		defer n.inflight.Done()
		defer cancel()
		if err := n.publisher.Publish(pubCtx, event); err != nil {
			log.Errorf("failed to publish notification: %v", err)
			return
		}
		log.WithField("recipients", len(event.Messages)).Debug("notification published")
	}()
}

type recipient struct {
	user        *models.User
	openingWord string
}

// recipients is the creator followed by every portal admin, each user at most once
func (n *Notifier) recipients(showcase *models.Package) ([]recipient, error) {
	seen := map[uuid.UUID]bool{}
	var out []recipient

	if showcase.CreatorUserID != nil {
		creator, err := n.userRepo.GetByID(*showcase.CreatorUserID)
		if err == nil {
			seen[creator.ID] = true
			out = append(out, recipient{user: creator, openingWord: "Your"})
		}
	}

	sysadmins, err := n.userRepo.GetSysadmins()
	if err != nil {
		return nil, err
	}
	adminIDs, err := n.adminRepo.GetAdminIDs()
	if err != nil {
		return nil, err
	}
	admins, err := n.userRepo.GetByIDs(adminIDs)
	if err != nil {
		return nil, err
	}

	for _, group := range [][]models.User{sysadmins, admins} {
		for i := range group {
			u := &group[i]
			if seen[u.ID] {
				continue
			}
			seen[u.ID] = true
			out = append(out, recipient{user: u, openingWord: "A"})
		}
	}
	return out, nil
}

func renderMessage(eventType string, vars messageVars) (*queue.Message, error) {
	subject, err := execute(subjectTmpls[eventType], vars)
	if err != nil {
		return nil, err
	}
	notification, err := execute(notificationTmpls[eventType], vars)
	if err != nil {
		return nil, err
	}
	for _, t := range lineTmpls[eventType] {
		line, err := execute(t, vars)
		if err != nil {
			return nil, err
		}
		vars.Lines = append(vars.Lines, line)
	}
	body, err := execute(bodyTmpl, vars)
	if err != nil {
		return nil, err
	}
	return &queue.Message{Subject: subject, Body: body, Notification: notification}, nil
}

func execute(t *template.Template, data interface{}) (string, error) {
	var buf bytes.Buffer
	if err := t.Execute(&buf, data); err != nil {
		return "", err
	}
	return buf.String(), nil
}
