package postgres

import (
	"context"
	"fmt"
	"github.com/beldeveloper/go-errors-context"
	"github.com/beldeveloper/train-dispatch/internal/app"
	"github.com/beldeveloper/train-dispatch/internal/app/errtype"
	"github.com/jackc/pgx/v4"
	"github.com/jackc/pgx/v4/pgxpool"
	"strings"
)

const experimentColumns = `"id", "kind", "name", "env", "trainer_config", "agent_config", "env_config",
	"encoder_checkpoint", "scod_config", "policy_checkpoint", "checkpoint_file", "seed", "args", "auto_scod",
	"status", "mode", "job_id", "host", "git_commit", "git_branch", "output_path", "command", "error_msg",
	"created_at", "updated_at"`

// NewExperiment creates a new instance of the repository.
func NewExperiment(conn *pgxpool.Pool) app.ExperimentRepo {
	return Experiment{conn: conn}
}

// Experiment implements a repository.
type Experiment struct {
	conn *pgxpool.Pool
}

// FindAll returns the experiments that match the filter, newest first.
func (r Experiment) FindAll(ctx context.Context, f app.FilterExperiments) ([]app.Experiment, error) {
	q := `SELECT ` + experimentColumns + ` FROM "experiments"`
	conds := make([]string, 0, 2)
	args := make([]interface{}, 0, 2)
	if f.Status != "" {
		args = append(args, f.Status)
		conds = append(conds, fmt.Sprintf(`"status" = $%d`, len(args)))
	}
	if f.Kind != "" {
		args = append(args, f.Kind)
		conds = append(conds, fmt.Sprintf(`"kind" = $%d`, len(args)))
	}
	if len(conds) > 0 {
		q += ` WHERE ` + strings.Join(conds, " AND ")
	}
	q += ` ORDER BY "id" DESC`
	rows, err := r.conn.Query(ctx, q, args...)
	if err != nil {
		return nil, errors.WrapContext(err, errors.Context{Path: "postgres.Experiment.FindAll.Query"})
	}
	defer rows.Close()
	res := make([]app.Experiment, 0)
	for rows.Next() {
		e, err := scanExperiment(rows)
		if err != nil {
			return nil, errors.WrapContext(err, errors.Context{Path: "postgres.Experiment.FindAll.Scan"})
		}
		res = append(res, e)
	}
	return res, nil
}

// FindByID returns the one experiment with the specific ID.
func (r Experiment) FindByID(ctx context.Context, id uint64) (app.Experiment, error) {
	q := `SELECT ` + experimentColumns + ` FROM "experiments" WHERE "id" = $1`
	e, err := scanExperiment(r.conn.QueryRow(ctx, q, id))
	if err == pgx.ErrNoRows {
		err = errtype.ErrNotFound
	}
	return e, errors.WrapContext(err, errors.Context{
		Path:   "postgres.Experiment.FindByID.Scan",
		Params: errors.Params{"experiment": id},
	})
}

// FindPending returns the oldest experiment that awaits dispatch.
func (r Experiment) FindPending(ctx context.Context) (app.Experiment, error) {
	q := `SELECT ` + experimentColumns + ` FROM "experiments" WHERE "status" = $1 ORDER BY "id" LIMIT 1`
	e, err := scanExperiment(r.conn.QueryRow(ctx, q, app.ExperimentStatusPending))
	if err == pgx.ErrNoRows {
		err = errtype.ErrNotFound
	}
	return e, errors.WrapContext(err, errors.Context{Path: "postgres.Experiment.FindPending.Scan"})
}

// FindActive returns the experiments that are submitted or running.
func (r Experiment) FindActive(ctx context.Context) ([]app.Experiment, error) {
	q := `SELECT ` + experimentColumns + ` FROM "experiments" WHERE "status" IN ($1, $2) ORDER BY "id"`
	rows, err := r.conn.Query(ctx, q, app.ExperimentStatusSubmitted, app.ExperimentStatusRunning)
	if err != nil {
		return nil, errors.WrapContext(err, errors.Context{Path: "postgres.Experiment.FindActive.Query"})
	}
	defer rows.Close()
	res := make([]app.Experiment, 0)
	for rows.Next() {
		e, err := scanExperiment(rows)
		if err != nil {
			return nil, errors.WrapContext(err, errors.Context{Path: "postgres.Experiment.FindActive.Scan"})
		}
		res = append(res, e)
	}
	return res, nil
}

// Add saves a new experiment.
func (r Experiment) Add(ctx context.Context, e app.Experiment) (app.Experiment, error) {
	q := `INSERT INTO "experiments" ("kind", "name", "env", "trainer_config", "agent_config", "env_config",
		"encoder_checkpoint", "scod_config", "policy_checkpoint", "checkpoint_file", "seed", "args", "auto_scod",
		"status", "mode", "job_id", "host", "git_commit", "git_branch", "output_path", "command", "error_msg",
		"created_at", "updated_at")
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20, $21, $22, $23, $24)
		RETURNING "id"`
	err := r.conn.QueryRow(
		ctx, q,
		e.Kind, e.Name, e.Env, e.TrainerConfig, e.AgentConfig, e.EnvConfig,
		e.EncoderCheckpoint, e.ScodConfig, e.PolicyCheckpoint, e.CheckpointFile, e.Seed, e.Args, e.AutoScod,
		e.Status, e.Mode, e.JobID, e.Host, e.Commit, e.GitBranch, e.OutputPath, e.Command, e.ErrorMsg,
		e.CreatedAt, e.UpdatedAt,
	).Scan(&e.ID)
	return e, errors.WrapContext(err, errors.Context{Path: "postgres.Experiment.Add.Scan"})
}

// Update modifies the dispatch fields of a specific experiment.
func (r Experiment) Update(ctx context.Context, e app.Experiment) (app.Experiment, error) {
	q := `UPDATE "experiments" SET "status" = $2, "mode" = $3, "job_id" = $4, "host" = $5, "git_commit" = $6,
		"git_branch" = $7, "output_path" = $8, "command" = $9, "error_msg" = $10, "updated_at" = $11
		WHERE "id" = $1`
	_, err := r.conn.Exec(
		ctx, q,
		e.ID, e.Status, e.Mode, e.JobID, e.Host, e.Commit,
		e.GitBranch, e.OutputPath, e.Command, e.ErrorMsg, e.UpdatedAt,
	)
	return e, errors.WrapContext(err, errors.Context{
		Path:   "postgres.Experiment.Update.Exec",
		Params: errors.Params{"experiment": e.ID, "status": e.Status},
	})
}

// UpdateStatus modifies the experiment status.
func (r Experiment) UpdateStatus(ctx context.Context, e app.Experiment) error {
	q := `UPDATE "experiments" SET "status" = $2, "error_msg" = $3, "updated_at" = $4 WHERE "id" = $1`
	_, err := r.conn.Exec(ctx, q, e.ID, e.Status, e.ErrorMsg, e.UpdatedAt)
	return errors.WrapContext(err, errors.Context{
		Path:   "postgres.Experiment.UpdateStatus.Exec",
		Params: errors.Params{"experiment": e.ID, "status": e.Status},
	})
}

func scanExperiment(row pgx.Row) (app.Experiment, error) {
	var e app.Experiment
	err := row.Scan(
		&e.ID, &e.Kind, &e.Name, &e.Env, &e.TrainerConfig, &e.AgentConfig, &e.EnvConfig,
		&e.EncoderCheckpoint, &e.ScodConfig, &e.PolicyCheckpoint, &e.CheckpointFile, &e.Seed, &e.Args, &e.AutoScod,
		&e.Status, &e.Mode, &e.JobID, &e.Host, &e.Commit, &e.GitBranch, &e.OutputPath, &e.Command, &e.ErrorMsg,
		&e.CreatedAt, &e.UpdatedAt,
	)
	return e, err
}
