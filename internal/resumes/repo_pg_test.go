package resumes

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
)

func TestPGRepoSaveUpserts(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	repo := &PGRepo{DB: db}
	resume := GeneratedResume{
		UserID:      "user-1",
		HTML:        "<div>резюме</div>",
		Template:    StyleStandard,
		Source:      SourceAI,
		GeneratedAt: time.Now().UTC(),
	}

	mock.ExpectExec("INSERT INTO generated_resumes").
		WithArgs(
			resume.UserID,
			resume.HTML,
			string(resume.Template),
			resume.Source,
			resume.GeneratedAt,
		).
		WillReturnResult(sqlmock.NewResult(1, 1))

	if err := repo.Save(context.Background(), resume); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("ExpectationsWereMet: %v", err)
	}
}

func TestPGRepoGetByUserID(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	repo := &PGRepo{DB: db}
	generatedAt := time.Now().UTC()

	rows := sqlmock.NewRows([]string{"user_id", "html", "template", "source", "generated_at"}).
		AddRow("user-1", "<div>резюме</div>", "modern", "template", generatedAt)
	mock.ExpectQuery("SELECT user_id, html, template, source, generated_at").
		WithArgs("user-1").
		WillReturnRows(rows)

	resume, err := repo.GetByUserID(context.Background(), "user-1")
	if err != nil {
		t.Fatalf("GetByUserID: %v", err)
	}
	if resume.Template != StyleModern {
		t.Fatalf("template = %q, want modern", resume.Template)
	}
	if resume.Source != SourceTemplate {
		t.Fatalf("source = %q, want template", resume.Source)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("ExpectationsWereMet: %v", err)
	}
}

func TestPGRepoGetByUserIDNotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	repo := &PGRepo{DB: db}
	mock.ExpectQuery("SELECT user_id, html, template, source, generated_at").
		WithArgs("missing").
		WillReturnRows(sqlmock.NewRows([]string{"user_id", "html", "template", "source", "generated_at"}))

	if _, err := repo.GetByUserID(context.Background(), "missing"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("got %v, want ErrNotFound", err)
	}
}
