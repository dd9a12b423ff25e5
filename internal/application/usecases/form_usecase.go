package usecases

import (
	"context"
	"errors"
	"time"

	"github.com/PavaniTiago/felice-endomarketing-api/internal/domain/entities"
	"github.com/PavaniTiago/felice-endomarketing-api/internal/domain/repositories"
	"github.com/PavaniTiago/felice-endomarketing-api/internal/domain/wizard"
	"github.com/PavaniTiago/felice-endomarketing-api/internal/infrastructure/cache"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"
)

// DefaultFormSessionTTL é a inatividade máxima de uma sessão do formulário
const DefaultFormSessionTTL = 30 * time.Minute

// FormPayload é o formulário ativo exibido no totem
type FormPayload struct {
	Questions   []entities.Question  `json:"perguntas"`
	Specialties []entities.Specialty `json:"nucleos"`
}

type FormUseCase interface {
	Form(ctx context.Context) (*FormPayload, error)
	Submit(ctx context.Context, submission wizard.Submission) (*wizard.Receipt, error)

	NewSession(ctx context.Context) (wizard.Snapshot, error)
	Snapshot(id uuid.UUID) (wizard.Snapshot, error)
	Start(id uuid.UUID) (wizard.Snapshot, error)
	Select(id, questionID, optionID uuid.UUID) (wizard.Snapshot, error)
	SetText(id, questionID uuid.UUID, text string) (wizard.Snapshot, error)
	Next(id uuid.UUID) (wizard.Snapshot, error)
	Prev(id uuid.UUID) (wizard.Snapshot, error)
	SetContact(id uuid.UUID, name, phone string) (wizard.Snapshot, error)
	SubmitSession(ctx context.Context, id uuid.UUID) (wizard.Snapshot, *wizard.Receipt, error)
	Reset(id uuid.UUID) (wizard.Snapshot, error)
	CloseSession(id uuid.UUID)
}

type formUseCase struct {
	questionRepo  repositories.QuestionRepository
	specialtyRepo repositories.SpecialtyRepository
	store         wizard.Store
	sessions      *cache.Cache
	ttl           time.Duration
	log           zerolog.Logger
}

// NewFormUseCase guarda as sessões em sessions; ao sair do cache a sessão é encerrada
func NewFormUseCase(
	questionRepo repositories.QuestionRepository,
	specialtyRepo repositories.SpecialtyRepository,
	store wizard.Store,
	sessions *cache.Cache,
	ttl time.Duration,
	log zerolog.Logger,
) FormUseCase {
	if ttl <= 0 {
		ttl = DefaultFormSessionTTL
	}
	sessions.OnEvicted(func(_ string, value interface{}) {
		if session, ok := value.(*wizard.Session); ok {
			session.Close()
		}
	})

	return &formUseCase{
		questionRepo:  questionRepo,
		specialtyRepo: specialtyRepo,
		store:         store,
		sessions:      sessions,
		ttl:           ttl,
		log:           log.With().Str("usecase", "form").Logger(),
	}
}

func (uc *formUseCase) Form(ctx context.Context) (*FormPayload, error) {
	var payload FormPayload

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		payload.Questions, err = uc.questionRepo.List(gctx, true)
		return
	})
	g.Go(func() (err error) {
		payload.Specialties, err = uc.specialtyRepo.List(gctx, true)
		return
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return &payload, nil
}

func (uc *formUseCase) activeForm(ctx context.Context) (wizard.Form, error) {
	questions, err := uc.questionRepo.List(ctx, true)
	if err != nil {
		return wizard.Form{}, err
	}
	return wizard.NewForm(questions), nil
}

// Submit recebe o formulário inteiro e o aplica pelas transições do passo a passo
func (uc *formUseCase) Submit(ctx context.Context, submission wizard.Submission) (*wizard.Receipt, error) {
	form, err := uc.activeForm(ctx)
	if err != nil {
		return nil, err
	}

	state, err := form.Replay(submission)
	if err != nil {
		return nil, wizardError(err)
	}

	_, receipt, err := form.Submit(ctx, state, uc.store)
	if err != nil {
		if isWizardError(err) {
			return nil, wizardError(err)
		}
		uc.log.Error().Err(err).Msg("Erro ao gravar formulário")
		return nil, err
	}

	uc.log.Info().
		Str("paciente_id", receipt.LeadID.String()).
		Int("respostas", receipt.Answers).
		Int("interesses", receipt.Interests).
		Msg("📝 Novo cadastro no totem")
	return &receipt, nil
}

func (uc *formUseCase) NewSession(ctx context.Context) (wizard.Snapshot, error) {
	form, err := uc.activeForm(ctx)
	if err != nil {
		return wizard.Snapshot{}, err
	}

	session := wizard.NewSession(form)
	uc.sessions.Set(session.ID.String(), session, uc.ttl)
	return session.Snapshot(), nil
}

func (uc *formUseCase) session(id uuid.UUID) (*wizard.Session, error) {
	value, found := uc.sessions.Get(id.String())
	if !found {
		return nil, ErrSessionNotFound
	}
	uc.sessions.Touch(id.String(), uc.ttl)
	return value.(*wizard.Session), nil
}

func (uc *formUseCase) apply(id uuid.UUID, fn func(*wizard.Session) (wizard.Snapshot, error)) (wizard.Snapshot, error) {
	session, err := uc.session(id)
	if err != nil {
		return wizard.Snapshot{}, err
	}
	snap, err := fn(session)
	if err != nil {
		return snap, wizardError(err)
	}
	return snap, nil
}

func (uc *formUseCase) Snapshot(id uuid.UUID) (wizard.Snapshot, error) {
	return uc.apply(id, func(s *wizard.Session) (wizard.Snapshot, error) { return s.Snapshot(), nil })
}

func (uc *formUseCase) Start(id uuid.UUID) (wizard.Snapshot, error) {
	return uc.apply(id, (*wizard.Session).Start)
}

func (uc *formUseCase) Select(id, questionID, optionID uuid.UUID) (wizard.Snapshot, error) {
	return uc.apply(id, func(s *wizard.Session) (wizard.Snapshot, error) { return s.Select(questionID, optionID) })
}

func (uc *formUseCase) SetText(id, questionID uuid.UUID, text string) (wizard.Snapshot, error) {
	return uc.apply(id, func(s *wizard.Session) (wizard.Snapshot, error) { return s.SetText(questionID, text) })
}

func (uc *formUseCase) Next(id uuid.UUID) (wizard.Snapshot, error) {
	return uc.apply(id, (*wizard.Session).Next)
}

func (uc *formUseCase) Prev(id uuid.UUID) (wizard.Snapshot, error) {
	return uc.apply(id, (*wizard.Session).Prev)
}

func (uc *formUseCase) SetContact(id uuid.UUID, name, phone string) (wizard.Snapshot, error) {
	return uc.apply(id, func(s *wizard.Session) (wizard.Snapshot, error) { return s.SetContact(name, phone) })
}

func (uc *formUseCase) SubmitSession(ctx context.Context, id uuid.UUID) (wizard.Snapshot, *wizard.Receipt, error) {
	session, err := uc.session(id)
	if err != nil {
		return wizard.Snapshot{}, nil, err
	}

	snap, receipt, err := session.Submit(ctx, uc.store)
	if err != nil {
		if isWizardError(err) {
			return snap, nil, wizardError(err)
		}
		uc.log.Error().Err(err).Str("sessao_id", id.String()).Msg("Erro ao gravar formulário")
		return snap, nil, err
	}
	return snap, &receipt, nil
}

func (uc *formUseCase) Reset(id uuid.UUID) (wizard.Snapshot, error) {
	return uc.apply(id, func(s *wizard.Session) (wizard.Snapshot, error) { return s.Reset(), nil })
}

func (uc *formUseCase) CloseSession(id uuid.UUID) {
	uc.sessions.Delete(id.String())
}

var wizardErrors = []error{
	wizard.ErrInvalidTransition,
	wizard.ErrAnswerRequired,
	wizard.ErrUnknownQuestion,
	wizard.ErrUnknownOption,
	wizard.ErrTooManyOptions,
	wizard.ErrCannotSubmit,
}

func isWizardError(err error) bool {
	for _, target := range wizardErrors {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}

// wizardError converte erros de transição em erros de validação
func wizardError(err error) error {
	if isWizardError(err) {
		return &ValidationError{Message: err.Error()}
	}
	return err
}
