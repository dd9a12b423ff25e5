package usecases

import (
	"context"
	"errors"
	"io"
	"sort"
	"sync"
	"time"

	"github.com/PavaniTiago/felice-endomarketing-api/internal/domain/entities"
	"github.com/PavaniTiago/felice-endomarketing-api/internal/domain/repositories"
	"github.com/google/uuid"
)

var errBackend = errors.New("backend indisponível")

// fakeAuth implementa AuthProvider em memória
type fakeAuth struct {
	users     []entities.AuthUser
	createErr error
	deleteErr error
	updated   []uuid.UUID
	deleted   []uuid.UUID
}

func (a *fakeAuth) SignIn(email, password string) (*entities.AuthSession, error) {
	for _, u := range a.users {
		if u.Email == email && password == "segredo123" {
			return &entities.AuthSession{AccessToken: "token", User: u}, nil
		}
	}
	return nil, ErrInvalidCredentials
}

func (a *fakeAuth) UserFromToken(token string) (*entities.AuthUser, error) {
	if token != "token" || len(a.users) == 0 {
		return nil, ErrUnauthorized
	}
	return &a.users[0], nil
}

func (a *fakeAuth) SignOut(string) error { return nil }
func (a *fakeAuth) Recover(string) error { return errBackend }

func (a *fakeAuth) ListUsers() ([]entities.AuthUser, error) {
	return a.users, nil
}

func (a *fakeAuth) CreateUser(email, _ string) (*entities.AuthUser, error) {
	if a.createErr != nil {
		return nil, a.createErr
	}
	for _, u := range a.users {
		if u.Email == email {
			return nil, ErrEmailTaken
		}
	}
	user := entities.AuthUser{ID: uuid.New(), Email: email, CreatedAt: time.Now()}
	a.users = append(a.users, user)
	return &user, nil
}

func (a *fakeAuth) UpdateUser(id uuid.UUID, _, _ string) error {
	a.updated = append(a.updated, id)
	return nil
}

func (a *fakeAuth) DeleteUser(id uuid.UUID) error {
	a.deleted = append(a.deleted, id)
	return a.deleteErr
}

// fakeStaffRepo implementa repositories.StaffRepository
type fakeStaffRepo struct {
	rows      map[uuid.UUID]entities.Staff
	createErr error
	deleteErr error
}

func newFakeStaffRepo(rows ...entities.Staff) *fakeStaffRepo {
	r := &fakeStaffRepo{rows: map[uuid.UUID]entities.Staff{}}
	for _, s := range rows {
		r.rows[s.ID] = s
	}
	return r
}

func (r *fakeStaffRepo) List(context.Context) ([]entities.Staff, error) {
	var out []entities.Staff
	for _, s := range r.rows {
		out = append(out, s)
	}
	return out, nil
}

func (r *fakeStaffRepo) FindByID(_ context.Context, id uuid.UUID) (*entities.Staff, error) {
	s, ok := r.rows[id]
	if !ok {
		return nil, repositories.ErrNotFound
	}
	return &s, nil
}

func (r *fakeStaffRepo) Create(_ context.Context, staff *entities.Staff) error {
	if r.createErr != nil {
		return r.createErr
	}
	r.rows[staff.ID] = *staff
	return nil
}

func (r *fakeStaffRepo) Update(_ context.Context, id uuid.UUID, fields map[string]interface{}) error {
	s, ok := r.rows[id]
	if !ok {
		return repositories.ErrNotFound
	}
	for k, v := range fields {
		switch k {
		case "nome":
			s.Name = v.(string)
		case "email":
			s.Email = v.(string)
		case "role":
			s.Role = v.(entities.StaffRole)
		case "ativo":
			s.Active = v.(bool)
		}
	}
	r.rows[id] = s
	return nil
}

func (r *fakeStaffRepo) Delete(_ context.Context, id uuid.UUID) error {
	if r.deleteErr != nil {
		return r.deleteErr
	}
	if _, ok := r.rows[id]; !ok {
		return repositories.ErrNotFound
	}
	delete(r.rows, id)
	return nil
}

// fakeSettingRepo implementa repositories.SettingRepository
type fakeSettingRepo struct {
	values map[string]*string
	getErr error
}

func (r *fakeSettingRepo) List(context.Context) ([]entities.Setting, error) {
	var out []entities.Setting
	for k, v := range r.values {
		out = append(out, entities.Setting{Key: k, Value: v})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Key < out[j].Key })
	return out, nil
}

func (r *fakeSettingRepo) Get(_ context.Context, key string) (*entities.Setting, error) {
	if r.getErr != nil {
		return nil, r.getErr
	}
	v, ok := r.values[key]
	if !ok {
		return nil, repositories.ErrNotFound
	}
	return &entities.Setting{Key: key, Value: v}, nil
}

func (r *fakeSettingRepo) Upsert(_ context.Context, key string, value *string) error {
	if r.values == nil {
		r.values = map[string]*string{}
	}
	r.values[key] = value
	return nil
}

// fakeLeadRepo implementa repositories.LeadRepository e wizard.Store
type fakeLeadRepo struct {
	mu        sync.Mutex
	views     []entities.LeadView
	interests []entities.Interest
	answers   []entities.Answer
	leads     []entities.Lead
	lastQuery repositories.LeadFilter
}

func (r *fakeLeadRepo) List(_ context.Context, filter repositories.LeadFilter) ([]entities.LeadView, int64, error) {
	r.lastQuery = filter
	return r.views, int64(len(r.views)), nil
}

func (r *fakeLeadRepo) FindByID(_ context.Context, id uuid.UUID) (*entities.LeadView, error) {
	for _, v := range r.views {
		if v.ID == id {
			return &v, nil
		}
	}
	return nil, repositories.ErrNotFound
}

func (r *fakeLeadRepo) InterestsByLeads(_ context.Context, ids []uuid.UUID) ([]entities.Interest, error) {
	var out []entities.Interest
	for _, i := range r.interests {
		for _, id := range ids {
			if i.LeadID == id {
				out = append(out, i)
			}
		}
	}
	return out, nil
}

func (r *fakeLeadRepo) AnswersByLead(_ context.Context, id uuid.UUID) ([]entities.Answer, error) {
	var out []entities.Answer
	for _, a := range r.answers {
		if a.LeadID == id {
			out = append(out, a)
		}
	}
	return out, nil
}

func (r *fakeLeadRepo) Delete(_ context.Context, id uuid.UUID) error {
	for i, v := range r.views {
		if v.ID == id {
			r.views = append(r.views[:i], r.views[i+1:]...)
			return nil
		}
	}
	return repositories.ErrNotFound
}

func (r *fakeLeadRepo) CreateLead(_ context.Context, lead *entities.Lead) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	lead.ID = uuid.New()
	r.leads = append(r.leads, *lead)
	return nil
}

func (r *fakeLeadRepo) CreateAnswers(_ context.Context, answers []entities.Answer) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.answers = append(r.answers, answers...)
	return nil
}

func (r *fakeLeadRepo) CreateInterests(_ context.Context, interests []entities.Interest) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.interests = append(r.interests, interests...)
	return nil
}

// fakeFollowupRepo implementa repositories.FollowupRepository
type fakeFollowupRepo struct {
	created   []entities.Followup
	createErr error
}

func (r *fakeFollowupRepo) ListByLead(_ context.Context, id uuid.UUID) ([]entities.Followup, error) {
	var out []entities.Followup
	for _, f := range r.created {
		if f.LeadID == id {
			out = append(out, f)
		}
	}
	return out, nil
}

func (r *fakeFollowupRepo) Create(_ context.Context, f *entities.Followup) error {
	if r.createErr != nil {
		return r.createErr
	}
	f.ID = uuid.New()
	r.created = append(r.created, *f)
	return nil
}

// fakeConversionRepo implementa repositories.ConversionRepository
type fakeConversionRepo struct {
	created []entities.Conversion
}

func (r *fakeConversionRepo) ListByLead(context.Context, uuid.UUID) ([]entities.Conversion, error) {
	return r.created, nil
}

func (r *fakeConversionRepo) Create(_ context.Context, c *entities.Conversion) error {
	c.ID = uuid.New()
	r.created = append(r.created, *c)
	return nil
}

// fakeTemplateRepo implementa repositories.TemplateRepository
type fakeTemplateRepo struct {
	rows map[uuid.UUID]entities.Template
}

func (r *fakeTemplateRepo) List(context.Context, *uuid.UUID, bool) ([]entities.Template, error) {
	var out []entities.Template
	for _, t := range r.rows {
		out = append(out, t)
	}
	return out, nil
}

func (r *fakeTemplateRepo) FindByID(_ context.Context, id uuid.UUID) (*entities.Template, error) {
	t, ok := r.rows[id]
	if !ok {
		return nil, repositories.ErrNotFound
	}
	return &t, nil
}

func (r *fakeTemplateRepo) Create(_ context.Context, t *entities.Template) error {
	t.ID = uuid.New()
	r.rows[t.ID] = *t
	return nil
}

func (r *fakeTemplateRepo) Update(_ context.Context, t *entities.Template) error {
	r.rows[t.ID] = *t
	return nil
}

func (r *fakeTemplateRepo) SetActive(_ context.Context, id uuid.UUID, active bool) error {
	t, ok := r.rows[id]
	if !ok {
		return repositories.ErrNotFound
	}
	t.Active = active
	r.rows[id] = t
	return nil
}

func (r *fakeTemplateRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(r.rows, id)
	return nil
}

// fakeQuestionRepo implementa repositories.QuestionRepository
type fakeQuestionRepo struct {
	questions []entities.Question
	reordered []uuid.UUID
	replaced  []entities.Option
}

func (r *fakeQuestionRepo) List(context.Context, bool) ([]entities.Question, error) {
	return r.questions, nil
}

func (r *fakeQuestionRepo) FindByID(_ context.Context, id uuid.UUID) (*entities.Question, error) {
	for _, q := range r.questions {
		if q.ID == id {
			return &q, nil
		}
	}
	return nil, repositories.ErrNotFound
}

func (r *fakeQuestionRepo) Create(_ context.Context, q *entities.Question) error {
	r.questions = append(r.questions, *q)
	return nil
}

func (r *fakeQuestionRepo) Update(_ context.Context, q *entities.Question) error {
	for i := range r.questions {
		if r.questions[i].ID == q.ID {
			r.questions[i] = *q
		}
	}
	return nil
}

func (r *fakeQuestionRepo) ReplaceOptions(_ context.Context, _ uuid.UUID, options []entities.Option) error {
	r.replaced = options
	return nil
}

func (r *fakeQuestionRepo) SetActive(context.Context, uuid.UUID, bool) error { return nil }

func (r *fakeQuestionRepo) Reorder(_ context.Context, ids []uuid.UUID) error {
	r.reordered = ids
	return nil
}

func (r *fakeQuestionRepo) Delete(context.Context, uuid.UUID) error { return nil }

// fakeSpecialtyRepo implementa repositories.SpecialtyRepository
type fakeSpecialtyRepo struct {
	specialties []entities.Specialty
}

func (r *fakeSpecialtyRepo) List(context.Context, bool) ([]entities.Specialty, error) {
	return r.specialties, nil
}

func (r *fakeSpecialtyRepo) FindByID(_ context.Context, id uuid.UUID) (*entities.Specialty, error) {
	for _, s := range r.specialties {
		if s.ID == id {
			return &s, nil
		}
	}
	return nil, repositories.ErrNotFound
}

func (r *fakeSpecialtyRepo) Create(_ context.Context, s *entities.Specialty) error {
	r.specialties = append(r.specialties, *s)
	return nil
}

func (r *fakeSpecialtyRepo) Update(context.Context, *entities.Specialty) error { return nil }
func (r *fakeSpecialtyRepo) Delete(context.Context, uuid.UUID) error           { return nil }

// fakeSender implementa MessageSender
type fakeSender struct {
	err  error
	sent []string
}

func (s *fakeSender) SendText(_ context.Context, phone, text string) error {
	if s.err != nil {
		return s.err
	}
	s.sent = append(s.sent, phone+": "+text)
	return nil
}

func (s *fakeSender) Status() WhatsAppStatus        { return WhatsAppStatus{Enabled: true, Connected: s.err == nil} }
func (s *fakeSender) Connect(context.Context) error { return s.err }
func (s *fakeSender) QRCode() ([]byte, error)       { return nil, ErrNotFound }

// fakeStorage implementa ObjectStorage
type fakeStorage struct {
	ensured  int
	uploaded map[string][]byte
	types    map[string]string
}

func (s *fakeStorage) EnsureBucket() error {
	s.ensured++
	return nil
}

func (s *fakeStorage) Upload(path, contentType string, body io.Reader) (string, error) {
	data, err := io.ReadAll(body)
	if err != nil {
		return "", err
	}
	if s.uploaded == nil {
		s.uploaded = map[string][]byte{}
		s.types = map[string]string{}
	}
	s.uploaded[path] = data
	s.types[path] = contentType
	return "https://cdn.example.com/images/" + path, nil
}

// fakeDashboardRepo implementa repositories.DashboardRepository
type fakeDashboardRepo struct {
	leads, today, followups, conversions int64
	revenue                              float64
	statuses                             map[entities.LeadStatus]int64
	leadDays                             []entities.DailyCount
	sinceSeen                            time.Time
}

func (r *fakeDashboardRepo) CountLeads(_ context.Context, since time.Time) (int64, error) {
	if since.IsZero() {
		return r.leads, nil
	}
	return r.today, nil
}

func (r *fakeDashboardRepo) CountFollowups(context.Context) (int64, error)   { return r.followups, nil }
func (r *fakeDashboardRepo) CountConversions(context.Context) (int64, error) { return r.conversions, nil }
func (r *fakeDashboardRepo) SumConversionValue(context.Context) (float64, error) {
	return r.revenue, nil
}

func (r *fakeDashboardRepo) CountByStatus(context.Context) (map[entities.LeadStatus]int64, error) {
	return r.statuses, nil
}

func (r *fakeDashboardRepo) SpecialtyStats(context.Context) ([]entities.SpecialtyStats, error) {
	return nil, nil
}

func (r *fakeDashboardRepo) LeadsPerDay(_ context.Context, since time.Time) ([]entities.DailyCount, error) {
	r.sinceSeen = since
	return r.leadDays, nil
}

func (r *fakeDashboardRepo) FollowupsPerDay(context.Context, time.Time) ([]entities.DailyCount, error) {
	return nil, nil
}

func (r *fakeDashboardRepo) ConversionsPerDay(context.Context, time.Time) ([]entities.DailyCount, error) {
	return nil, nil
}
