package hint

import (
	"context"
	"errors"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/lydiaandcrim/wyshdrop-backend/internal/contact"
	"github.com/lydiaandcrim/wyshdrop-backend/internal/platform/mailer"
	"github.com/lydiaandcrim/wyshdrop-backend/internal/product"
	"github.com/lydiaandcrim/wyshdrop-backend/internal/user"
)

// fakeMailer fails delivery for addresses listed in failFor.
type fakeMailer struct {
	failFor map[string]bool
	sent    []mailer.HintEmail
}

func (f *fakeMailer) SendHint(ctx context.Context, email mailer.HintEmail) []mailer.RecipientResult {
	f.sent = append(f.sent, email)
	results := make([]mailer.RecipientResult, 0, len(email.Recipients))
	for _, r := range email.Recipients {
		res := mailer.RecipientResult{ContactID: r.ContactID, Email: r.Email}
		if f.failFor[r.Email] {
			res.Err = errors.New("mailbox unavailable")
		}
		results = append(results, res)
	}
	return results
}

func (f *fakeMailer) SendWelcome(ctx context.Context, email mailer.WelcomeEmail) error {
	return nil
}

func testSetup(t *testing.T, mail mailer.Sender) (*Service, *gorm.DB, *user.Session) {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&product.Product{}, &contact.Contact{}, &Hint{}))

	require.NoError(t, db.Create(&product.Product{ID: 1, Name: "Sunset Projection Lamp", Price: 23.5}).Error)
	require.NoError(t, db.Create(&contact.Contact{ID: 1, UserID: "u-1", Name: "Ana", Email: "ana@example.com"}).Error)
	require.NoError(t, db.Create(&contact.Contact{ID: 2, UserID: "u-1", Name: "Ben", Email: "ben@example.com"}).Error)
	require.NoError(t, db.Create(&contact.Contact{ID: 3, UserID: "u-2", Name: "Eve", Email: "eve@example.com"}).Error)

	svc := NewService(db, product.NewRepository(db), contact.NewService(db), mail, logrus.New())
	session := &user.Session{UserID: "u-1", Username: "lydia", Email: "lydia@example.com"}
	return svc, db, session
}

func TestDispatchMarksRowsSent(t *testing.T) {
	mail := &fakeMailer{}
	svc, db, session := testSetup(t, mail)

	outcomes, err := svc.Dispatch(context.Background(), session, 1, []uint{1, 2})
	require.NoError(t, err)
	require.Len(t, outcomes, 2)
	for _, o := range outcomes {
		assert.Equal(t, StatusSent, o.Status)
	}

	var rows []Hint
	require.NoError(t, db.Find(&rows).Error)
	require.Len(t, rows, 2)
	for _, row := range rows {
		assert.Equal(t, StatusSent, row.Status)
		assert.NotNil(t, row.SentAt)
	}
}

func TestPartialFailureIsPerRecipient(t *testing.T) {
	mail := &fakeMailer{failFor: map[string]bool{"ben@example.com": true}}
	svc, db, session := testSetup(t, mail)

	outcomes, err := svc.Dispatch(context.Background(), session, 1, []uint{1, 2})
	require.NoError(t, err, "one bad mailbox must not fail the dispatch")

	byEmail := map[string]RecipientOutcome{}
	for _, o := range outcomes {
		byEmail[o.Email] = o
	}
	assert.Equal(t, StatusSent, byEmail["ana@example.com"].Status)
	assert.Equal(t, StatusFailed, byEmail["ben@example.com"].Status)
	assert.NotEmpty(t, byEmail["ben@example.com"].Error)

	var failed Hint
	require.NoError(t, db.Where("contact_id = ?", 2).First(&failed).Error)
	assert.Equal(t, StatusFailed, failed.Status)
	assert.Nil(t, failed.SentAt)
}

func TestDispatchDropsForeignContacts(t *testing.T) {
	mail := &fakeMailer{}
	svc, _, session := testSetup(t, mail)

	outcomes, err := svc.Dispatch(context.Background(), session, 1, []uint{1, 3})
	require.NoError(t, err)
	require.Len(t, outcomes, 1, "another user's contact is silently dropped")
	assert.Equal(t, "ana@example.com", outcomes[0].Email)
}

func TestDispatchRequiresRecipients(t *testing.T) {
	svc, _, session := testSetup(t, &fakeMailer{})

	_, err := svc.Dispatch(context.Background(), session, 1, nil)
	assert.ErrorIs(t, err, ErrNoRecipients)

	_, err = svc.Dispatch(context.Background(), session, 1, []uint{3})
	assert.ErrorIs(t, err, ErrNoRecipients, "only foreign contacts leaves no recipients")
}

func TestDispatchUnknownProduct(t *testing.T) {
	svc, _, session := testSetup(t, &fakeMailer{})

	_, err := svc.Dispatch(context.Background(), session, 99, []uint{1})
	assert.ErrorIs(t, err, ErrProductNotFound)
}

func TestHistoryNewestFirst(t *testing.T) {
	mail := &fakeMailer{}
	svc, _, session := testSetup(t, mail)

	_, err := svc.Dispatch(context.Background(), session, 1, []uint{1})
	require.NoError(t, err)
	_, err = svc.Dispatch(context.Background(), session, 1, []uint{2})
	require.NoError(t, err)

	hints, err := svc.History(session.UserID)
	require.NoError(t, err)
	assert.Len(t, hints, 2)

	other, err := svc.History("u-2")
	require.NoError(t, err)
	assert.Empty(t, other, "history is sender-scoped")
}
