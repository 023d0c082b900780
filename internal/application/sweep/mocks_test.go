package sweep

import (
	"context"
	"sync"

	"github.com/gearguard/gearguard/internal/application/maintenance/dto"
	"github.com/gearguard/gearguard/internal/application/maintenance/usecases"
	"github.com/gearguard/gearguard/internal/domain/user"
	"github.com/gearguard/gearguard/internal/infrastructure/email"
)

type mockRequestLister struct {
	ExecuteFunc func(ctx context.Context, query usecases.ListRequestsQuery) ([]*dto.RequestDTO, error)
}

func (m *mockRequestLister) Execute(ctx context.Context, query usecases.ListRequestsQuery) ([]*dto.RequestDTO, error) {
	if m.ExecuteFunc != nil {
		return m.ExecuteFunc(ctx, query)
	}
	return nil, nil
}

type mockRecipientFinder struct {
	mu     sync.Mutex
	calls  int
	byRole map[user.Role][]*user.User
}

func (m *mockRecipientFinder) ListActiveByRoles(ctx context.Context, roles ...user.Role) ([]*user.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls++
	var out []*user.User
	for _, r := range roles {
		out = append(out, m.byRole[r]...)
	}
	return out, nil
}

type mockDigestRenderer struct {
	mu           sync.Mutex
	alerts       map[string][]email.OverdueRow
	alertTotals  map[string]int
	managerViews map[string]email.ManagerDigestView
	tasks        map[string][]email.TechnicianTask
	failFor      string
}

func newMockDigestRenderer() *mockDigestRenderer {
	return &mockDigestRenderer{
		alerts:       make(map[string][]email.OverdueRow),
		alertTotals:  make(map[string]int),
		managerViews: make(map[string]email.ManagerDigestView),
		tasks:        make(map[string][]email.TechnicianTask),
	}
}

func (m *mockDigestRenderer) message(kind email.Kind, to email.Recipient) (*email.Message, error) {
	if to.Email == m.failFor {
		return nil, errRender
	}
	return &email.Message{Kind: kind, To: to.Email, ToName: to.Name, Subject: string(kind)}, nil
}

func (m *mockDigestRenderer) OverdueAlert(to email.Recipient, total int, rows []email.OverdueRow) (*email.Message, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.alerts[to.Email] = rows
	m.alertTotals[to.Email] = total
	return m.message(email.KindOverdueAlert, to)
}

func (m *mockDigestRenderer) ManagerDigest(to email.Recipient, v email.ManagerDigestView) (*email.Message, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.managerViews[to.Email] = v
	return m.message(email.KindManagerDigest, to)
}

func (m *mockDigestRenderer) TechnicianDigest(to email.Recipient, tasks []email.TechnicianTask) (*email.Message, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.tasks[to.Email] = tasks
	return m.message(email.KindTechnicianDigest, to)
}

type mockEnqueuer struct {
	mu   sync.Mutex
	sent []*email.Message
	err  error
}

func (m *mockEnqueuer) Enqueue(ctx context.Context, msg *email.Message) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return m.err
	}
	m.sent = append(m.sent, msg)
	return nil
}

func (m *mockEnqueuer) recipients() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]string, 0, len(m.sent))
	for _, msg := range m.sent {
		out = append(out, msg.To)
	}
	return out
}

type mockRefresher struct {
	changed int
	err     error
}

func (m *mockRefresher) Execute(ctx context.Context) (int, error) {
	return m.changed, m.err
}
