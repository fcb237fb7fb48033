package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/urano-b2b/internal/constants"
	"github.com/urano-b2b/internal/models"
	"github.com/urano-b2b/internal/notify"
	"github.com/urano-b2b/internal/repository"
)

func TestRegisterAlertSyncsRemoteAndLocal(t *testing.T) {
	repo := &memAlertRepo{}
	fake := newFakeBackend()
	recorder := &notify.Recorder{}
	at := time.Date(2024, 5, 2, 9, 0, 0, 0, time.UTC)
	svc, err := NewStockAlertService(StockAlertServiceOptions{
		Repo:     repo,
		Remote:   fake,
		Identity: staticIdentity{identity: models.Identity{Email: "compras@ateneo.com"}, ok: true},
		Notifier: recorder,
		Clock:    fixedClock(at),
	})
	if err != nil {
		t.Fatalf("new stock alert service failed: %v", err)
	}

	reg, err := svc.RegisterAlert(context.Background(), "7")
	if err != nil {
		t.Fatalf("register failed: %v", err)
	}
	if !reg.LocalCommitted || !reg.RemoteSynced || reg.RemoteErr != nil {
		t.Fatalf("unexpected registration: %+v", reg)
	}
	if len(fake.alerts) != 1 || fake.alerts[0].UserID != "compras@ateneo.com" || !fake.alerts[0].CreatedAt.Equal(at) {
		t.Fatalf("unexpected remote request: %+v", fake.alerts)
	}
	if !svc.IsNotified("7") || len(repo.ids) != 1 {
		t.Fatalf("alert should be committed locally")
	}
	if last, _ := recorder.Last(notify.KindSuccess); last.Message != constants.StockAlertSuccessToast {
		t.Fatalf("unexpected success message %q", last.Message)
	}
}

func TestRegisterAlertRemoteFailureIsSilent(t *testing.T) {
	repo := &memAlertRepo{}
	fake := newFakeBackend()
	fake.alertErr = errors.New("404 not found")
	recorder := &notify.Recorder{}
	svc, _ := NewStockAlertService(StockAlertServiceOptions{Repo: repo, Remote: fake, Notifier: recorder})

	reg, err := svc.RegisterAlert(context.Background(), "3")
	if err != nil {
		t.Fatalf("remote failure should not be returned: %v", err)
	}
	if reg.RemoteSynced || reg.RemoteErr == nil || !reg.LocalCommitted {
		t.Fatalf("unexpected registration: %+v", reg)
	}
	if fake.alerts[0].UserID != constants.DefaultFallbackUserID {
		t.Fatalf("want fallback user id got %s", fake.alerts[0].UserID)
	}
	if _, ok := recorder.Last(notify.KindError); ok {
		t.Fatalf("remote failure should not notify an error")
	}
	if !svc.IsNotified("3") {
		t.Fatalf("local commit should still happen")
	}
}

func TestRegisterAlertLocalFailureRollsBack(t *testing.T) {
	repo := &memAlertRepo{saveErr: errStorageDown}
	recorder := &notify.Recorder{}
	svc, _ := NewStockAlertService(StockAlertServiceOptions{Repo: repo, Remote: newFakeBackend(), Notifier: recorder})

	_, err := svc.RegisterAlert(context.Background(), "5")
	if !errors.Is(err, ErrAlertPersistFailed) {
		t.Fatalf("want ErrAlertPersistFailed got %v", err)
	}
	if svc.IsNotified("5") {
		t.Fatalf("in-memory set should roll back")
	}
	if _, ok := recorder.Last(notify.KindError); !ok {
		t.Fatalf("local failure should notify an error")
	}
}

func TestStockAlertsSurviveRestart(t *testing.T) {
	db := setupServiceTestDB(t)
	repo := repository.NewStockAlertStateRepository(db)
	svc, err := NewStockAlertService(StockAlertServiceOptions{Repo: repo, Notifier: &notify.Recorder{}})
	if err != nil {
		t.Fatalf("new service failed: %v", err)
	}
	for _, id := range []string{"9", "2", "9"} {
		if _, err := svc.RegisterAlert(context.Background(), id); err != nil {
			t.Fatalf("register %s failed: %v", id, err)
		}
	}
	reloaded, err := NewStockAlertService(StockAlertServiceOptions{Repo: repo})
	if err != nil {
		t.Fatalf("reload failed: %v", err)
	}
	list := reloaded.List()
	if len(list) != 2 || list[0] != "2" || list[1] != "9" {
		t.Fatalf("unexpected alerts after reload: %v", list)
	}
}
