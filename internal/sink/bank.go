package sink

import (
	"database/sql"
	"fmt"

	"github.com/azfstudy/qextract/internal/model"

	_ "modernc.org/sqlite"
)

// Bank writes the extracted questions into a SQLite file so study apps
// can load them without parsing JSON. It is an output format, not a
// persistence layer: the extractor itself keeps no state in it.
type Bank struct {
	db *sql.DB
}

func OpenBank(path string) (*Bank, error) {
	db, err := sql.Open("sqlite", path+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("open question bank: %w", err)
	}
	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("ping question bank: %w", err)
	}
	b := &Bank{db: db}
	if err := b.migrate(); err != nil {
		return nil, fmt.Errorf("migrate: %w", err)
	}
	return b, nil
}

func (b *Bank) Close() error {
	return b.db.Close()
}

func (b *Bank) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS questions (
		id INTEGER PRIMARY KEY,
		question TEXT NOT NULL
	);

	CREATE TABLE IF NOT EXISTS answers (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		question_id INTEGER NOT NULL,
		letter TEXT NOT NULL,
		text TEXT NOT NULL,
		correct INTEGER NOT NULL DEFAULT 0,
		FOREIGN KEY (question_id) REFERENCES questions(id),
		UNIQUE (question_id, letter)
	);
	`
	_, err := b.db.Exec(schema)
	return err
}

// InsertRecord stores one question and its four options.
func (b *Bank) InsertRecord(rec model.QuestionRecord) error {
	tx, err := b.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.Exec(
		`INSERT INTO questions (id, question) VALUES (?, ?)`,
		rec.ID, rec.Question,
	); err != nil {
		return fmt.Errorf("insert question %d: %w", rec.ID, err)
	}

	for _, opt := range rec.Answers {
		if _, err := tx.Exec(
			`INSERT INTO answers (question_id, letter, text, correct) VALUES (?, ?, ?, ?)`,
			rec.ID, string(opt.Letter), opt.Text, opt.Correct,
		); err != nil {
			return fmt.Errorf("insert answer %d%s: %w", rec.ID, opt.Letter, err)
		}
	}

	return tx.Commit()
}

// WriteAll stores every record.
func (b *Bank) WriteAll(records []model.QuestionRecord) error {
	for _, rec := range records {
		if err := b.InsertRecord(rec); err != nil {
			return err
		}
	}
	return nil
}

// QuestionCount returns the number of stored questions.
func (b *Bank) QuestionCount() (int, error) {
	var count int
	err := b.db.QueryRow(`SELECT COUNT(*) FROM questions`).Scan(&count)
	return count, err
}

// GetRecord loads one question with its options in letter order.
func (b *Bank) GetRecord(id int) (model.QuestionRecord, error) {
	rec := model.QuestionRecord{ID: id}

	err := b.db.QueryRow(`SELECT question FROM questions WHERE id = ?`, id).Scan(&rec.Question)
	if err != nil {
		return rec, err
	}

	rows, err := b.db.Query(
		`SELECT letter, text, correct FROM answers WHERE question_id = ? ORDER BY letter`, id)
	if err != nil {
		return rec, err
	}
	defer rows.Close()

	for rows.Next() {
		var opt model.AnswerOption
		var letter string
		if err := rows.Scan(&letter, &opt.Text, &opt.Correct); err != nil {
			return rec, err
		}
		opt.Letter = model.Letter(letter)
		rec.Answers = append(rec.Answers, opt)
	}
	return rec, rows.Err()
}
