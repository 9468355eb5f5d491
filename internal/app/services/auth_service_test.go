package services

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/devang/placeport/internal/app/models"
	"github.com/devang/placeport/internal/app/models/dto"
	"github.com/devang/placeport/internal/pkg/apperrors"
	"github.com/devang/placeport/internal/pkg/auth"
)

type fakeUserStore struct {
	byID    map[uuid.UUID]*models.User
	byEmail map[string]*models.User
}

func newFakeUserStore() *fakeUserStore {
	return &fakeUserStore{
		byID:    make(map[uuid.UUID]*models.User),
		byEmail: make(map[string]*models.User),
	}
}

func (f *fakeUserStore) Create(_ context.Context, u *models.User) error {
	if _, ok := f.byEmail[u.Email]; ok {
		return apperrors.ErrEmailAlreadyExists
	}
	uc := *u
	f.byID[u.ID] = &uc
	f.byEmail[u.Email] = &uc
	return nil
}

func (f *fakeUserStore) GetByID(_ context.Context, id uuid.UUID) (*models.User, error) {
	u, ok := f.byID[id]
	if !ok {
		return nil, apperrors.ErrUserNotFound
	}
	uc := *u
	return &uc, nil
}

func (f *fakeUserStore) GetByEmail(_ context.Context, email string) (*models.User, error) {
	u, ok := f.byEmail[email]
	if !ok {
		return nil, apperrors.ErrUserNotFound
	}
	uc := *u
	return &uc, nil
}

func (f *fakeUserStore) List(_ context.Context) ([]*models.User, error) {
	out := make([]*models.User, 0, len(f.byID))
	for _, u := range f.byID {
		uc := *u
		out = append(out, &uc)
	}
	return out, nil
}

func (f *fakeUserStore) EmailExists(_ context.Context, email string) (bool, error) {
	_, ok := f.byEmail[email]
	return ok, nil
}

func (f *fakeUserStore) RollNoExists(_ context.Context, rollNo string) (bool, error) {
	for _, u := range f.byID {
		if u.RollNo == rollNo {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeUserStore) SetVerified(_ context.Context, id uuid.UUID, verified bool) error {
	u, ok := f.byID[id]
	if !ok {
		return apperrors.ErrUserNotFound
	}
	u.IsVerified = verified
	return nil
}

func (f *fakeUserStore) SetRole(_ context.Context, id uuid.UUID, role models.Role) error {
	u, ok := f.byID[id]
	if !ok {
		return apperrors.ErrUserNotFound
	}
	u.Role = role
	return nil
}

func (f *fakeUserStore) UpdatePassword(_ context.Context, id uuid.UUID, hash string) error {
	u, ok := f.byID[id]
	if !ok {
		return apperrors.ErrUserNotFound
	}
	u.Password = hash
	return nil
}

type fakeCodeStore struct {
	codes    map[string]string
	verified map[string]bool
}

func newFakeCodeStore() *fakeCodeStore {
	return &fakeCodeStore{codes: make(map[string]string), verified: make(map[string]bool)}
}

func (f *fakeCodeStore) SaveCode(_ context.Context, email, hashedCode string, _ time.Duration) error {
	delete(f.verified, email)
	f.codes[email] = hashedCode
	return nil
}

func (f *fakeCodeStore) ConsumeCode(_ context.Context, email string) (string, error) {
	h, ok := f.codes[email]
	if !ok {
		return "", apperrors.ErrCodeNotFound
	}
	delete(f.codes, email)
	return h, nil
}

func (f *fakeCodeStore) PeekCode(_ context.Context, email string) (string, error) {
	h, ok := f.codes[email]
	if !ok {
		return "", apperrors.ErrCodeNotFound
	}
	return h, nil
}

func (f *fakeCodeStore) MarkVerified(_ context.Context, email string, _ time.Duration) error {
	f.verified[email] = true
	return nil
}

func (f *fakeCodeStore) ConsumeVerified(_ context.Context, email string) error {
	if !f.verified[email] {
		return apperrors.ErrCodeNotVerified
	}
	delete(f.verified, email)
	return nil
}

type fakeMailer struct {
	sentTo   []string
	lastCode string
}

func (f *fakeMailer) SendVerificationCode(toEmail, code string) error {
	f.sentTo = append(f.sentTo, toEmail)
	f.lastCode = code
	return nil
}

const testEmailDomain = "student.nitw.ac.in"

func newTestAuthService(users *fakeUserStore, codes *fakeCodeStore, mailer *fakeMailer) *AuthService {
	jwtService := auth.NewJWTService(auth.JWTConfig{
		SecretKey:   "test-secret",
		TokenExp:    time.Hour,
		TokenIssuer: "test",
	})
	return NewAuthService(users, codes, mailer, jwtService, testEmailDomain, 10*time.Minute, zerolog.Nop())
}

func validSignup() *dto.SignupRequest {
	return &dto.SignupRequest{
		Email:    "22mcf1r01@student.nitw.ac.in",
		Password: "str0ngpass",
		Name:     "Devi Prasad",
		RollNo:   "22MCF1R01",
		Tenth:    dto.AcademicRecordRequest{CGPA: 9.2, Percentage: 90},
		Twelfth:  dto.AcademicRecordRequest{CGPA: 8.8, Percentage: 88},
		UG:       dto.AcademicRecordRequest{CGPA: 8.1, Percentage: 78},
	}
}

func TestSignup(t *testing.T) {
	ctx := context.Background()

	t.Run("creates unverified unplaced student", func(t *testing.T) {
		users := newFakeUserStore()
		svc := newTestAuthService(users, newFakeCodeStore(), &fakeMailer{})

		user, err := svc.Signup(ctx, validSignup())
		if err != nil {
			t.Fatalf("Signup: %v", err)
		}
		if user.IsVerified {
			t.Error("new account is verified")
		}
		if user.Placed || user.PlacedAt.CompanyID != models.NotPlacedCompanyID {
			t.Errorf("new account placement = %+v, want not placed", user.PlacedAt)
		}
		if user.Role != models.RoleStudent {
			t.Errorf("role = %q, want student", user.Role)
		}
		if user.Batch != 2025 {
			t.Errorf("batch = %d, want 2025 derived from 22MCF1R01", user.Batch)
		}
		if user.Password == "str0ngpass" {
			t.Error("password stored in plaintext")
		}
	})

	t.Run("collects every validation failure", func(t *testing.T) {
		svc := newTestAuthService(newFakeUserStore(), newFakeCodeStore(), &fakeMailer{})

		req := validSignup()
		req.Email = "someone@gmail.com"
		req.Password = "short"
		req.RollNo = "nope"

		_, err := svc.Signup(ctx, req)
		var verr *apperrors.ValidationError
		if !errors.As(err, &verr) {
			t.Fatalf("err = %v, want ValidationError", err)
		}
		if len(verr.Messages) < 3 {
			t.Errorf("got %d messages %v, want at least 3", len(verr.Messages), verr.Messages)
		}
		if !errors.Is(err, apperrors.ErrValidationFailed) {
			t.Error("ValidationError does not unwrap to ErrValidationFailed")
		}
	})

	t.Run("duplicate email", func(t *testing.T) {
		users := newFakeUserStore()
		svc := newTestAuthService(users, newFakeCodeStore(), &fakeMailer{})

		if _, err := svc.Signup(ctx, validSignup()); err != nil {
			t.Fatalf("first signup: %v", err)
		}
		req := validSignup()
		req.RollNo = "22MCF1R02"
		if _, err := svc.Signup(ctx, req); !errors.Is(err, apperrors.ErrEmailAlreadyExists) {
			t.Fatalf("err = %v, want ErrEmailAlreadyExists", err)
		}
	})

	t.Run("duplicate roll number", func(t *testing.T) {
		users := newFakeUserStore()
		svc := newTestAuthService(users, newFakeCodeStore(), &fakeMailer{})

		if _, err := svc.Signup(ctx, validSignup()); err != nil {
			t.Fatalf("first signup: %v", err)
		}
		req := validSignup()
		req.Email = "22mcf1r99@student.nitw.ac.in"
		if _, err := svc.Signup(ctx, req); !errors.Is(err, apperrors.ErrRollNoAlreadyExists) {
			t.Fatalf("err = %v, want ErrRollNoAlreadyExists", err)
		}
	})
}

func TestLogin(t *testing.T) {
	ctx := context.Background()

	setup := func(t *testing.T, verified bool) (*AuthService, *fakeUserStore, *models.User) {
		t.Helper()
		users := newFakeUserStore()
		svc := newTestAuthService(users, newFakeCodeStore(), &fakeMailer{})
		user, err := svc.Signup(ctx, validSignup())
		if err != nil {
			t.Fatalf("signup: %v", err)
		}
		if verified {
			if err := users.SetVerified(ctx, user.ID, true); err != nil {
				t.Fatalf("verify: %v", err)
			}
		}
		return svc, users, user
	}

	t.Run("verified account gets a token", func(t *testing.T) {
		svc, _, _ := setup(t, true)

		token, err := svc.Login(ctx, &dto.LoginRequest{Email: "22mcf1r01@student.nitw.ac.in", Password: "str0ngpass"})
		if err != nil {
			t.Fatalf("Login: %v", err)
		}
		if token.AccessToken == "" || token.TokenType != "Bearer" {
			t.Errorf("token = %+v", token)
		}
		if token.ExpiresIn != int64(time.Hour.Seconds()) {
			t.Errorf("expiresIn = %d, want %d", token.ExpiresIn, int64(time.Hour.Seconds()))
		}
	})

	t.Run("unverified account is refused", func(t *testing.T) {
		svc, _, _ := setup(t, false)

		_, err := svc.Login(ctx, &dto.LoginRequest{Email: "22mcf1r01@student.nitw.ac.in", Password: "str0ngpass"})
		if !errors.Is(err, apperrors.ErrAccountNotVerified) {
			t.Fatalf("err = %v, want ErrAccountNotVerified", err)
		}
	})

	t.Run("wrong password and unknown email read the same", func(t *testing.T) {
		svc, _, _ := setup(t, true)

		_, errWrong := svc.Login(ctx, &dto.LoginRequest{Email: "22mcf1r01@student.nitw.ac.in", Password: "wrong-pass1"})
		_, errUnknown := svc.Login(ctx, &dto.LoginRequest{Email: "ghost@student.nitw.ac.in", Password: "str0ngpass"})
		if !errors.Is(errWrong, apperrors.ErrInvalidCredentials) {
			t.Errorf("wrong password err = %v", errWrong)
		}
		if !errors.Is(errUnknown, apperrors.ErrInvalidCredentials) {
			t.Errorf("unknown email err = %v", errUnknown)
		}
	})
}

func TestPasswordResetFlow(t *testing.T) {
	ctx := context.Background()
	const email = "22mcf1r01@student.nitw.ac.in"

	setup := func(t *testing.T) (*AuthService, *fakeUserStore, *fakeCodeStore, *fakeMailer) {
		t.Helper()
		users := newFakeUserStore()
		codes := newFakeCodeStore()
		mailer := &fakeMailer{}
		svc := newTestAuthService(users, codes, mailer)
		user, err := svc.Signup(ctx, validSignup())
		if err != nil {
			t.Fatalf("signup: %v", err)
		}
		if err := users.SetVerified(ctx, user.ID, true); err != nil {
			t.Fatalf("verify: %v", err)
		}
		return svc, users, codes, mailer
	}

	t.Run("full flow resets the password", func(t *testing.T) {
		svc, _, _, mailer := setup(t)

		if err := svc.RequestCode(ctx, email); err != nil {
			t.Fatalf("RequestCode: %v", err)
		}
		if len(mailer.sentTo) != 1 || mailer.sentTo[0] != email {
			t.Fatalf("mailer sent to %v", mailer.sentTo)
		}
		if len(mailer.lastCode) != 6 {
			t.Fatalf("code %q is not 6 digits", mailer.lastCode)
		}

		if err := svc.VerifyCode(ctx, email, mailer.lastCode); err != nil {
			t.Fatalf("VerifyCode: %v", err)
		}
		if err := svc.ResetPassword(ctx, email, "newpass123"); err != nil {
			t.Fatalf("ResetPassword: %v", err)
		}

		if _, err := svc.Login(ctx, &dto.LoginRequest{Email: email, Password: "newpass123"}); err != nil {
			t.Errorf("login with new password: %v", err)
		}
		if _, err := svc.Login(ctx, &dto.LoginRequest{Email: email, Password: "str0ngpass"}); !errors.Is(err, apperrors.ErrInvalidCredentials) {
			t.Errorf("old password still works: %v", err)
		}
	})

	t.Run("code is single use", func(t *testing.T) {
		svc, _, _, mailer := setup(t)

		if err := svc.RequestCode(ctx, email); err != nil {
			t.Fatalf("RequestCode: %v", err)
		}
		code := mailer.lastCode
		if err := svc.VerifyCode(ctx, email, code); err != nil {
			t.Fatalf("first verify: %v", err)
		}
		if err := svc.VerifyCode(ctx, email, code); !errors.Is(err, apperrors.ErrCodeNotFound) {
			t.Fatalf("second verify err = %v, want ErrCodeNotFound", err)
		}
	})

	t.Run("wrong code leaves the real one usable", func(t *testing.T) {
		svc, _, _, mailer := setup(t)

		if err := svc.RequestCode(ctx, email); err != nil {
			t.Fatalf("RequestCode: %v", err)
		}
		wrong := "000000"
		if wrong == mailer.lastCode {
			wrong = "000001"
		}
		if err := svc.VerifyCode(ctx, email, wrong); !errors.Is(err, apperrors.ErrCodeMismatch) {
			t.Fatalf("err = %v, want ErrCodeMismatch", err)
		}
		if err := svc.VerifyCode(ctx, email, mailer.lastCode); err != nil {
			t.Fatalf("verify after mismatch: %v", err)
		}
	})

	t.Run("new request supersedes the old code", func(t *testing.T) {
		svc, _, _, mailer := setup(t)

		if err := svc.RequestCode(ctx, email); err != nil {
			t.Fatalf("first request: %v", err)
		}
		oldCode := mailer.lastCode
		if err := svc.RequestCode(ctx, email); err != nil {
			t.Fatalf("second request: %v", err)
		}
		if mailer.lastCode == oldCode {
			t.Skip("codes collided, cannot distinguish supersession")
		}
		if err := svc.VerifyCode(ctx, email, oldCode); !errors.Is(err, apperrors.ErrCodeMismatch) {
			t.Fatalf("old code err = %v, want ErrCodeMismatch", err)
		}
	})

	t.Run("reset without verification is refused", func(t *testing.T) {
		svc, _, _, mailer := setup(t)

		if err := svc.RequestCode(ctx, email); err != nil {
			t.Fatalf("RequestCode: %v", err)
		}
		if mailer.lastCode == "" {
			t.Fatal("no code issued")
		}
		if err := svc.ResetPassword(ctx, email, "newpass123"); !errors.Is(err, apperrors.ErrCodeNotVerified) {
			t.Fatalf("err = %v, want ErrCodeNotVerified", err)
		}
	})

	t.Run("second reset needs a fresh code", func(t *testing.T) {
		svc, _, _, mailer := setup(t)

		if err := svc.RequestCode(ctx, email); err != nil {
			t.Fatalf("RequestCode: %v", err)
		}
		if err := svc.VerifyCode(ctx, email, mailer.lastCode); err != nil {
			t.Fatalf("VerifyCode: %v", err)
		}
		if err := svc.ResetPassword(ctx, email, "newpass123"); err != nil {
			t.Fatalf("first reset: %v", err)
		}
		if err := svc.ResetPassword(ctx, email, "anotherpass1"); !errors.Is(err, apperrors.ErrCodeNotVerified) {
			t.Fatalf("second reset err = %v, want ErrCodeNotVerified", err)
		}
	})

	t.Run("request for unknown account", func(t *testing.T) {
		svc, _, _, _ := setup(t)

		err := svc.RequestCode(ctx, "ghost@student.nitw.ac.in")
		if !errors.Is(err, apperrors.ErrUserNotFound) {
			t.Fatalf("err = %v, want ErrUserNotFound", err)
		}
	})
}

func TestValidateSignupMessages(t *testing.T) {
	svc := newTestAuthService(newFakeUserStore(), newFakeCodeStore(), &fakeMailer{})

	req := validSignup()
	req.Tenth.CGPA = 11
	req.Backlogs = -1

	errs := svc.ValidateSignup(req)
	joined := strings.Join(errs, "; ")
	if !strings.Contains(joined, "cgpa") {
		t.Errorf("missing cgpa message in %v", errs)
	}
	if !strings.Contains(joined, "backlogs") {
		t.Errorf("missing backlogs message in %v", errs)
	}
}
