package usecase

import (
	"context"
	"crypto/rand"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"vittahub/config"
	"vittahub/internal/converter"
	"vittahub/internal/delivery/dto"
	"vittahub/internal/domain/entity"
	"vittahub/internal/domain/repository"
	"vittahub/internal/scheduling"
	"vittahub/internal/service"
	"vittahub/internal/wizard"
)

var (
	ErrWizardNotFound       = errors.New("no open wizard for this session")
	ErrProfessionalNotFound = errors.New("professional not found in clinic roster")
	ErrNotConfirmable       = errors.New("wizard is not at the confirmation step")
)

const wizardKeyPrefix = "session:wizard:"

// WizardUsecase drives a per-session booking wizard. The state machine
// itself lives in the wizard package; this layer rehydrates it from the
// session store around every operation and persists the snapshot back.
type WizardUsecase interface {
	Open(ctx context.Context, sessionID string, clinicID int, req *dto.OpenWizardRequest) (*dto.WizardStateResponse, error)
	State(ctx context.Context, sessionID string) (*dto.WizardStateResponse, error)
	SelectProfessional(ctx context.Context, sessionID string, professionalID int) (*dto.WizardStateResponse, error)
	SelectProcedure(ctx context.Context, sessionID string, procedureID int) (*dto.WizardStateResponse, error)
	SelectDate(ctx context.Context, sessionID, date string) (*dto.WizardStateResponse, error)
	SelectTime(ctx context.Context, sessionID, timeLabel string) (*dto.WizardStateResponse, error)
	Advance(ctx context.Context, sessionID string) (*dto.WizardStateResponse, error)
	Retreat(ctx context.Context, sessionID string) (*dto.WizardStateResponse, error)
	Confirm(ctx context.Context, sessionID string) (*dto.AppointmentResponse, error)
	Close(ctx context.Context, sessionID string) error

	BookableDates(ctx context.Context, sessionID string) (*dto.BookableDatesResponse, error)
	AvailableTimes(ctx context.Context, sessionID, date string) (*dto.AvailableTimesResponse, error)
	SearchProfessionals(ctx context.Context, sessionID, query string) (*dto.ProfessionalListResponse, error)
	SearchProcedures(ctx context.Context, sessionID, query string) (*dto.ProcedureListResponse, error)
	Appointments(ctx context.Context, sessionID string) (*dto.AppointmentListResponse, error)
}

type wizardUsecase struct {
	log             *logrus.Logger
	clinicRepo      repository.ClinicRepository
	procedureRepo   repository.ProcedureRepository
	appointmentRepo repository.AppointmentRepository
	store           service.SessionStore
	cfg             config.BookingConfig
	now             func() time.Time
}

func NewWizardUsecase(
	log *logrus.Logger,
	clinicRepo repository.ClinicRepository,
	procedureRepo repository.ProcedureRepository,
	appointmentRepo repository.AppointmentRepository,
	store service.SessionStore,
	cfg config.BookingConfig,
	now func() time.Time,
) WizardUsecase {
	if now == nil {
		now = time.Now
	}
	return &wizardUsecase{
		log:             log,
		clinicRepo:      clinicRepo,
		procedureRepo:   procedureRepo,
		appointmentRepo: appointmentRepo,
		store:           store,
		cfg:             cfg,
		now:             now,
	}
}

func (u *wizardUsecase) Open(ctx context.Context, sessionID string, clinicID int, req *dto.OpenWizardRequest) (*dto.WizardStateResponse, error) {
	clinic, err := u.clinicRepo.FindByID(ctx, clinicID)
	if err != nil {
		u.log.Warnf("Failed to find clinic %d: %+v", clinicID, err)
		return nil, err
	}
	if clinic == nil {
		return nil, ErrClinicNotFound
	}

	opts := u.wizardOptions()
	if req != nil && req.ProfessionalID != nil {
		professional := rosterLookup(clinic, *req.ProfessionalID)
		if professional == nil {
			return nil, ErrProfessionalNotFound
		}
		opts = append(opts, wizard.WithProfessional(*professional))
	}

	w := wizard.New(*clinic, opts...)
	if err := u.save(ctx, sessionID, w); err != nil {
		return nil, err
	}

	u.log.Infof("Wizard opened: session=%s, clinic=%d", sessionID, clinicID)
	return converter.WizardToStateResponse(w), nil
}

func (u *wizardUsecase) State(ctx context.Context, sessionID string) (*dto.WizardStateResponse, error) {
	w, err := u.load(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	return converter.WizardToStateResponse(w), nil
}

func (u *wizardUsecase) SelectProfessional(ctx context.Context, sessionID string, professionalID int) (*dto.WizardStateResponse, error) {
	return u.mutate(ctx, sessionID, func(w *wizard.Wizard) error {
		clinic := w.Clinic()
		professional := rosterLookup(&clinic, professionalID)
		if professional == nil {
			return ErrProfessionalNotFound
		}
		w.SelectProfessional(*professional)
		return nil
	})
}

func (u *wizardUsecase) SelectProcedure(ctx context.Context, sessionID string, procedureID int) (*dto.WizardStateResponse, error) {
	return u.mutate(ctx, sessionID, func(w *wizard.Wizard) error {
		procedure, err := u.procedureRepo.FindByID(ctx, procedureID)
		if err != nil {
			return err
		}
		if procedure == nil {
			return ErrProcedureNotFound
		}
		w.SelectProcedure(*procedure)
		return nil
	})
}

// SelectDate applies the date; an unbookable date is a rejected no-op and
// the returned snapshot simply shows the unchanged selection.
func (u *wizardUsecase) SelectDate(ctx context.Context, sessionID, date string) (*dto.WizardStateResponse, error) {
	return u.mutate(ctx, sessionID, func(w *wizard.Wizard) error {
		w.SelectDate(date)
		return nil
	})
}

func (u *wizardUsecase) SelectTime(ctx context.Context, sessionID, timeLabel string) (*dto.WizardStateResponse, error) {
	return u.mutate(ctx, sessionID, func(w *wizard.Wizard) error {
		w.SelectTime(timeLabel)
		return nil
	})
}

func (u *wizardUsecase) Advance(ctx context.Context, sessionID string) (*dto.WizardStateResponse, error) {
	return u.mutate(ctx, sessionID, func(w *wizard.Wizard) error {
		w.Advance()
		return nil
	})
}

func (u *wizardUsecase) Retreat(ctx context.Context, sessionID string) (*dto.WizardStateResponse, error) {
	return u.mutate(ctx, sessionID, func(w *wizard.Wizard) error {
		w.Retreat()
		return nil
	})
}

// Confirm completes the wizard: it emits the confirmation payload, records
// the appointment with a booking code and discards the session's wizard
// state. Confirming anywhere but the final step fails without touching
// state.
func (u *wizardUsecase) Confirm(ctx context.Context, sessionID string) (*dto.AppointmentResponse, error) {
	w, err := u.load(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	confirmation, ok := w.Confirm()
	if !ok {
		return nil, ErrNotConfirmable
	}

	// Step 1 has no gate, so the professional may be unset at confirm time
	var professional entity.Professional
	if confirmation.Professional != nil {
		professional = *confirmation.Professional
	}

	appointment := &entity.Appointment{
		ID:           uuid.New(),
		SessionID:    sessionID,
		BookingCode:  generateBookingCode(confirmation.Date),
		ClinicID:     confirmation.Clinic.ID,
		ClinicName:   confirmation.Clinic.Name,
		Professional: professional,
		Procedure:    *confirmation.Procedure,
		Date:         confirmation.Date,
		Time:         confirmation.Time,
		CreatedAt:    u.now(),
	}
	if err := u.appointmentRepo.Create(ctx, appointment); err != nil {
		u.log.Errorf("Failed to record appointment for session %s: %+v", sessionID, err)
		return nil, err
	}

	if err := u.store.Delete(ctx, wizardKeyPrefix+sessionID); err != nil {
		// The confirmation already happened; a stale session entry expires
		// on its own.
		u.log.Warnf("Failed to delete wizard state for session %s: %+v", sessionID, err)
	}

	u.log.Infof("Appointment confirmed: session=%s, clinic=%d, code=%s, date=%s %s",
		sessionID, appointment.ClinicID, appointment.BookingCode, appointment.Date, appointment.Time)
	return converter.AppointmentToResponse(appointment), nil
}

func (u *wizardUsecase) Close(ctx context.Context, sessionID string) error {
	w, err := u.load(ctx, sessionID)
	if err != nil {
		return err
	}
	w.Close()
	return u.store.Delete(ctx, wizardKeyPrefix+sessionID)
}

func (u *wizardUsecase) BookableDates(ctx context.Context, sessionID string) (*dto.BookableDatesResponse, error) {
	w, err := u.load(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	return &dto.BookableDatesResponse{Dates: w.BookableDates()}, nil
}

func (u *wizardUsecase) AvailableTimes(ctx context.Context, sessionID, date string) (*dto.AvailableTimesResponse, error) {
	w, err := u.load(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	return &dto.AvailableTimesResponse{Date: date, Times: w.AvailableTimes(date)}, nil
}

// SearchProfessionals narrows the wizard clinic's roster for step 1
func (u *wizardUsecase) SearchProfessionals(ctx context.Context, sessionID, query string) (*dto.ProfessionalListResponse, error) {
	w, err := u.load(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	clinic := w.Clinic()
	roster := scheduling.FilterBySubstring(clinic.Roster(), query, func(p entity.Professional) []string {
		return []string{p.Name, p.Specialty}
	})
	return &dto.ProfessionalListResponse{
		Professionals: converter.ProfessionalsToResponses(roster),
		Specialties:   clinic.RosterSpecialties(),
		Total:         len(roster),
	}, nil
}

// SearchProcedures narrows the procedure catalog for step 2
func (u *wizardUsecase) SearchProcedures(ctx context.Context, sessionID, query string) (*dto.ProcedureListResponse, error) {
	if _, err := u.load(ctx, sessionID); err != nil {
		return nil, err
	}
	procedures, err := u.procedureRepo.Search(ctx, query)
	if err != nil {
		return nil, err
	}
	return &dto.ProcedureListResponse{
		Procedures: converter.ProceduresToResponses(procedures),
		Total:      len(procedures),
	}, nil
}

func (u *wizardUsecase) Appointments(ctx context.Context, sessionID string) (*dto.AppointmentListResponse, error) {
	appointments, err := u.appointmentRepo.FindBySessionID(ctx, sessionID)
	if err != nil {
		u.log.Warnf("Failed to find appointments for session %s: %+v", sessionID, err)
		return nil, err
	}
	return &dto.AppointmentListResponse{
		Appointments: converter.AppointmentsToResponses(appointments),
		Total:        len(appointments),
	}, nil
}

func (u *wizardUsecase) wizardOptions() []wizard.Option {
	return []wizard.Option{
		wizard.WithHorizonDays(u.cfg.HorizonDays),
		wizard.WithBufferMinutes(u.cfg.BufferMinutes),
		wizard.WithNow(u.now),
	}
}

func (u *wizardUsecase) mutate(ctx context.Context, sessionID string, apply func(*wizard.Wizard) error) (*dto.WizardStateResponse, error) {
	w, err := u.load(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if err := apply(w); err != nil {
		return nil, err
	}
	if err := u.save(ctx, sessionID, w); err != nil {
		return nil, err
	}
	return converter.WizardToStateResponse(w), nil
}

func (u *wizardUsecase) load(ctx context.Context, sessionID string) (*wizard.Wizard, error) {
	raw, err := u.store.Get(ctx, wizardKeyPrefix+sessionID)
	if err != nil {
		u.log.Warnf("Failed to load wizard state for session %s: %+v", sessionID, err)
		return nil, err
	}
	if raw == nil {
		return nil, ErrWizardNotFound
	}

	var state wizard.State
	if err := json.Unmarshal(raw, &state); err != nil {
		u.log.Warnf("Corrupt wizard state for session %s: %+v", sessionID, err)
		return nil, ErrWizardNotFound
	}

	clinic, err := u.clinicRepo.FindByID(ctx, state.ClinicID)
	if err != nil {
		return nil, err
	}
	if clinic == nil {
		return nil, ErrClinicNotFound
	}

	return wizard.Restore(*clinic, state, u.wizardOptions()...), nil
}

func (u *wizardUsecase) save(ctx context.Context, sessionID string, w *wizard.Wizard) error {
	raw, err := json.Marshal(w.Snapshot())
	if err != nil {
		return err
	}
	if err := u.store.Set(ctx, wizardKeyPrefix+sessionID, raw, u.cfg.SessionTTL); err != nil {
		u.log.Warnf("Failed to save wizard state for session %s: %+v", sessionID, err)
		return err
	}
	return nil
}

func rosterLookup(clinic *entity.Clinic, professionalID int) *entity.Professional {
	for _, professional := range clinic.Roster() {
		if professional.ID == professionalID {
			p := professional
			return &p
		}
	}
	return nil
}

// generateBookingCode generates a unique booking code: BK-YYYYMMDD-XXXXXX
func generateBookingCode(isoDate string) string {
	dateStr := isoDate
	if t, err := time.Parse(scheduling.DateLayout, isoDate); err == nil {
		dateStr = t.Format("20060102")
	}
	randomBytes := make([]byte, 3)
	rand.Read(randomBytes)
	return fmt.Sprintf("BK-%s-%06X", dateStr, randomBytes)
}
