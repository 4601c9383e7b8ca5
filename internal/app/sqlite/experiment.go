package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"github.com/beldeveloper/go-errors-context"
	"github.com/beldeveloper/train-dispatch/internal/app"
	"github.com/beldeveloper/train-dispatch/internal/app/errtype"
	"strings"
	"time"
)

const experimentColumns = `id, kind, name, env, trainer_config, agent_config, env_config,
	encoder_checkpoint, scod_config, policy_checkpoint, checkpoint_file, seed, args, auto_scod,
	status, mode, job_id, host, git_commit, git_branch, output_path, command, error_msg,
	created_at, updated_at`

// NewExperiment creates a new instance of the repository.
func NewExperiment(conn *sql.DB) app.ExperimentRepo {
	return Experiment{conn: conn}
}

// Experiment implements a repository.
type Experiment struct {
	conn *sql.DB
}

// FindAll returns the experiments that match the filter, newest first.
func (r Experiment) FindAll(ctx context.Context, f app.FilterExperiments) ([]app.Experiment, error) {
	q := `SELECT ` + experimentColumns + ` FROM experiments`
	conds := make([]string, 0, 2)
	args := make([]interface{}, 0, 2)
	if f.Status != "" {
		args = append(args, f.Status)
		conds = append(conds, `status = ?`)
	}
	if f.Kind != "" {
		args = append(args, f.Kind)
		conds = append(conds, `kind = ?`)
	}
	if len(conds) > 0 {
		q += ` WHERE ` + strings.Join(conds, " AND ")
	}
	q += ` ORDER BY id DESC`
	rows, err := r.conn.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, errors.WrapContext(err, errors.Context{Path: "sqlite.Experiment.FindAll.Query"})
	}
	defer rows.Close()
	res := make([]app.Experiment, 0)
	for rows.Next() {
		e, err := scanExperiment(rows)
		if err != nil {
			return nil, errors.WrapContext(err, errors.Context{Path: "sqlite.Experiment.FindAll.Scan"})
		}
		res = append(res, e)
	}
	return res, nil
}

// FindByID returns the one experiment with the specific ID.
func (r Experiment) FindByID(ctx context.Context, id uint64) (app.Experiment, error) {
	q := `SELECT ` + experimentColumns + ` FROM experiments WHERE id = ?`
	e, err := scanExperiment(r.conn.QueryRowContext(ctx, q, id))
	if err == sql.ErrNoRows {
		err = errtype.ErrNotFound
	}
	return e, errors.WrapContext(err, errors.Context{
		Path:   "sqlite.Experiment.FindByID.Scan",
		Params: errors.Params{"experiment": id},
	})
}

// FindPending returns the oldest experiment that awaits dispatch.
func (r Experiment) FindPending(ctx context.Context) (app.Experiment, error) {
	q := `SELECT ` + experimentColumns + ` FROM experiments WHERE status = ? ORDER BY id LIMIT 1`
	e, err := scanExperiment(r.conn.QueryRowContext(ctx, q, app.ExperimentStatusPending))
	if err == sql.ErrNoRows {
		err = errtype.ErrNotFound
	}
	return e, errors.WrapContext(err, errors.Context{Path: "sqlite.Experiment.FindPending.Scan"})
}

// FindActive returns the experiments that are submitted or running.
func (r Experiment) FindActive(ctx context.Context) ([]app.Experiment, error) {
	q := `SELECT ` + experimentColumns + ` FROM experiments WHERE status IN (?, ?) ORDER BY id`
	rows, err := r.conn.QueryContext(ctx, q, app.ExperimentStatusSubmitted, app.ExperimentStatusRunning)
	if err != nil {
		return nil, errors.WrapContext(err, errors.Context{Path: "sqlite.Experiment.FindActive.Query"})
	}
	defer rows.Close()
	res := make([]app.Experiment, 0)
	for rows.Next() {
		e, err := scanExperiment(rows)
		if err != nil {
			return nil, errors.WrapContext(err, errors.Context{Path: "sqlite.Experiment.FindActive.Scan"})
		}
		res = append(res, e)
	}
	return res, nil
}

// Add saves a new experiment.
func (r Experiment) Add(ctx context.Context, e app.Experiment) (app.Experiment, error) {
	args, err := encodeArgs(e.Args)
	if err != nil {
		return e, errors.WrapContext(err, errors.Context{Path: "sqlite.Experiment.Add.encodeArgs"})
	}
	q := `INSERT INTO experiments (kind, name, env, trainer_config, agent_config, env_config,
		encoder_checkpoint, scod_config, policy_checkpoint, checkpoint_file, seed, args, auto_scod,
		status, mode, job_id, host, git_commit, git_branch, output_path, command, error_msg,
		created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	res, err := r.conn.ExecContext(
		ctx, q,
		e.Kind, e.Name, e.Env, e.TrainerConfig, e.AgentConfig, e.EnvConfig,
		e.EncoderCheckpoint, e.ScodConfig, e.PolicyCheckpoint, e.CheckpointFile, e.Seed, args, e.AutoScod,
		e.Status, e.Mode, e.JobID, e.Host, e.Commit, e.GitBranch, e.OutputPath, e.Command, e.ErrorMsg,
		e.CreatedAt.Format(time.RFC3339), e.UpdatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return e, errors.WrapContext(err, errors.Context{Path: "sqlite.Experiment.Add.Exec"})
	}
	id, err := res.LastInsertId()
	if err != nil {
		return e, errors.WrapContext(err, errors.Context{Path: "sqlite.Experiment.Add.LastInsertId"})
	}
	e.ID = uint64(id)
	return e, nil
}

// Update modifies the dispatch fields of a specific experiment.
func (r Experiment) Update(ctx context.Context, e app.Experiment) (app.Experiment, error) {
	q := `UPDATE experiments SET status = ?, mode = ?, job_id = ?, host = ?, git_commit = ?,
		git_branch = ?, output_path = ?, command = ?, error_msg = ?, updated_at = ? WHERE id = ?`
	_, err := r.conn.ExecContext(
		ctx, q,
		e.Status, e.Mode, e.JobID, e.Host, e.Commit,
		e.GitBranch, e.OutputPath, e.Command, e.ErrorMsg, e.UpdatedAt.Format(time.RFC3339), e.ID,
	)
	return e, errors.WrapContext(err, errors.Context{
		Path:   "sqlite.Experiment.Update.Exec",
		Params: errors.Params{"experiment": e.ID, "status": e.Status},
	})
}

// UpdateStatus modifies the experiment status.
func (r Experiment) UpdateStatus(ctx context.Context, e app.Experiment) error {
	q := `UPDATE experiments SET status = ?, error_msg = ?, updated_at = ? WHERE id = ?`
	_, err := r.conn.ExecContext(ctx, q, e.Status, e.ErrorMsg, e.UpdatedAt.Format(time.RFC3339), e.ID)
	return errors.WrapContext(err, errors.Context{
		Path:   "sqlite.Experiment.UpdateStatus.Exec",
		Params: errors.Params{"experiment": e.ID, "status": e.Status},
	})
}

func scanExperiment(row interface {
	Scan(dest ...interface{}) error
}) (app.Experiment, error) {
	var e app.Experiment
	var args, errorMsg sql.NullString
	var created, updated string
	err := row.Scan(
		&e.ID, &e.Kind, &e.Name, &e.Env, &e.TrainerConfig, &e.AgentConfig, &e.EnvConfig,
		&e.EncoderCheckpoint, &e.ScodConfig, &e.PolicyCheckpoint, &e.CheckpointFile, &e.Seed, &args, &e.AutoScod,
		&e.Status, &e.Mode, &e.JobID, &e.Host, &e.Commit, &e.GitBranch, &e.OutputPath, &e.Command, &errorMsg,
		&created, &updated,
	)
	if err != nil {
		return e, err
	}
	if args.Valid && args.String != "" {
		err = json.Unmarshal([]byte(args.String), &e.Args)
		if err != nil {
			return e, fmt.Errorf("decode args: %w", err)
		}
	}
	if errorMsg.Valid {
		e.ErrorMsg = &errorMsg.String
	}
	e.CreatedAt, err = time.Parse(time.RFC3339, created)
	if err != nil {
		return e, fmt.Errorf("parse created_at: %w", err)
	}
	e.UpdatedAt, err = time.Parse(time.RFC3339, updated)
	if err != nil {
		return e, fmt.Errorf("parse updated_at: %w", err)
	}
	return e, nil
}

func encodeArgs(args []string) (interface{}, error) {
	if len(args) == 0 {
		return nil, nil
	}
	data, err := json.Marshal(args)
	if err != nil {
		return nil, err
	}
	return string(data), nil
}
