package sqlite

import (
	"database/sql"
	"github.com/beldeveloper/go-errors-context"
	"github.com/beldeveloper/train-dispatch/pkg/os"
	"path/filepath"

	_ "modernc.org/sqlite"
)

// Connect opens the SQLite database and prepares the schema.
func Connect(path string) (*sql.DB, error) {
	err := os.EnsureDir(filepath.Dir(path))
	if err != nil {
		return nil, errors.WrapContext(err, errors.Context{
			Path:   "sqlite.Connect.EnsureDir",
			Params: errors.Params{"path": path},
		})
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, errors.WrapContext(err, errors.Context{
			Path:   "sqlite.Connect.Open",
			Params: errors.Params{"path": path},
		})
	}
	err = initSchema(db)
	if err != nil {
		db.Close()
		return nil, errors.WrapContext(err, errors.Context{
			Path:   "sqlite.Connect.initSchema",
			Params: errors.Params{"path": path},
		})
	}
	return db, nil
}

func initSchema(db *sql.DB) error {
	const createExperiments = `
CREATE TABLE IF NOT EXISTS experiments (
  id                 INTEGER PRIMARY KEY AUTOINCREMENT,
  kind               TEXT NOT NULL,
  name               TEXT NOT NULL,
  env                TEXT NOT NULL DEFAULT '',
  trainer_config     TEXT NOT NULL DEFAULT '',
  agent_config       TEXT NOT NULL DEFAULT '',
  env_config         TEXT NOT NULL DEFAULT '',
  encoder_checkpoint TEXT NOT NULL DEFAULT '',
  scod_config        TEXT NOT NULL DEFAULT '',
  policy_checkpoint  TEXT NOT NULL DEFAULT '',
  checkpoint_file    TEXT NOT NULL DEFAULT '',
  seed               INTEGER NOT NULL DEFAULT 0,
  args               TEXT,
  auto_scod          INTEGER NOT NULL DEFAULT 0,
  status             TEXT NOT NULL,
  mode               TEXT NOT NULL DEFAULT '',
  job_id             TEXT NOT NULL DEFAULT '',
  host               TEXT NOT NULL DEFAULT '',
  git_commit         TEXT NOT NULL DEFAULT '',
  git_branch         TEXT NOT NULL DEFAULT '',
  output_path        TEXT NOT NULL DEFAULT '',
  command            TEXT NOT NULL DEFAULT '',
  error_msg          TEXT,
  created_at         TEXT NOT NULL,
  updated_at         TEXT NOT NULL
);`
	_, err := db.Exec(createExperiments)
	return err
}
