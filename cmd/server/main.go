package main

import (
	"context"
	"database/sql"
	"fmt"
	"github.com/beldeveloper/train-dispatch/internal/app"
	"github.com/beldeveloper/train-dispatch/internal/app/postgres"
	"github.com/beldeveloper/train-dispatch/internal/app/sqlite"
	"github.com/beldeveloper/train-dispatch/internal/app/svc"
	"github.com/beldeveloper/train-dispatch/pkg"
	pkgos "github.com/beldeveloper/train-dispatch/pkg/os"
	"github.com/beldeveloper/train-dispatch/rpc/tracker"
	"github.com/jackc/pgx/v4/pgxpool"
	"github.com/julienschmidt/httprouter"
	"google.golang.org/grpc"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"
)

func main() {
	// get watcher and router using DI wire
	c, err := initializeContainer()
	if err != nil {
		log.Fatalf("main: %v\n", err)
	}
	// run watcher that dispatches and syncs the experiments in background
	go c.watcher.Watch()
	// run http server
	runHttpServer(c.router)
}

type container struct {
	watcher svc.Watcher
	router  *httprouter.Router
}

func newContainer(watcher svc.Watcher, router *httprouter.Router) container {
	return container{
		watcher: watcher,
		router:  router,
	}
}

func newWorkDir() app.WorkDir {
	return app.WorkDir(os.Getenv("TRAIN_DISPATCH_WORK_DIR"))
}

func newAccessKey() app.ApiAccessKey {
	return app.ApiAccessKey(os.Getenv("TRAIN_DISPATCH_ACCESS_KEY"))
}

func newHostname() app.Hostname {
	name := os.Getenv("TRAIN_DISPATCH_HOSTNAME")
	if name == "" {
		var err error
		name, err = os.Hostname()
		if err != nil {
			log.Fatalf("main.newHostname: %v\n", err)
		}
	}
	return app.Hostname(name)
}

func newPythonBin() app.PythonBin {
	bin := os.Getenv("TRAIN_DISPATCH_PYTHON")
	if bin == "" {
		bin = "python"
	}
	return app.PythonBin(bin)
}

func newDebugSteps() app.DebugSteps {
	return app.DebugSteps{
		Pretrain:     envInt("TRAIN_DISPATCH_DEBUG_PRETRAIN_STEPS", 10),
		Train:        envInt("TRAIN_DISPATCH_DEBUG_TRAIN_STEPS", 10),
		EvalEpisodes: envInt("TRAIN_DISPATCH_DEBUG_EVAL_EPISODES", 10),
	}
}

func envInt(name string, def int) int {
	v := os.Getenv(name)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		log.Fatalf("main.envInt: %v; name=%s\n", err, name)
	}
	return n
}

func newLogsDir() app.LogsDir {
	dir := os.Getenv("TRAIN_DISPATCH_LOGS_DIR")
	if dir == "" {
		dir = "logs"
	}
	err := pkgos.EnsureDir(dir)
	if err != nil {
		log.Fatalf("main.newLogsDir: %v\n", err)
	}
	return app.LogsDir(dir)
}

func newDispatchRules(m app.MarshallerSvc) []app.DispatchRule {
	rules := []app.DispatchRule{
		{HostPattern: `sc\.stanford\.edu`, Mode: app.DispatchModeSbatch, Script: "scripts/train/train_juno.sh"},
		{HostPattern: `juno-login-.*`, Mode: app.DispatchModeSbatch, Script: "scripts/train/train_gcp.sh"},
	}
	path := os.Getenv("TRAIN_DISPATCH_RULES_FILE")
	if path == "" {
		return rules
	}
	data, err := os.ReadFile(path)
	if err != nil {
		log.Fatalf("main.newDispatchRules: read: %v; path=%s\n", err, path)
	}
	err = m.Unmarshal(data, &rules)
	if err != nil {
		log.Fatalf("main.newDispatchRules: unmarshal: %v; path=%s\n", err, path)
	}
	return rules
}

func newWatcher(experiment app.ExperimentSvc) svc.Watcher {
	return svc.NewWatcher([]app.WatcherJob{
		{
			Name: "dispatchExperiment",
			Do:   experiment.DispatchJob,
		},
		{
			Name: "syncExperiments",
			Do:   experiment.SyncJob,
		},
	})
}

func newExperimentRepo() app.ExperimentRepo {
	driver := os.Getenv("TRAIN_DISPATCH_DB_DRIVER")
	switch driver {
	case "", "sqlite":
		return sqlite.NewExperiment(newSqliteConn())
	case "postgres":
		return postgres.NewExperiment(newPostgresConn())
	}
	log.Fatalf("main.newExperimentRepo: unsupported DB driver: %s\n", driver)
	return nil
}

func newSqliteConn() *sql.DB {
	path := os.Getenv("TRAIN_DISPATCH_SQLITE_PATH")
	if path == "" {
		path = "train_dispatch.db"
	}
	conn, err := sqlite.Connect(path)
	if err != nil {
		log.Fatalf("main.newSqliteConn: %v\n", err)
	}
	return conn
}

func newPostgresConn() *pgxpool.Pool {
	pgs := fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		os.Getenv("TRAIN_DISPATCH_DB_HOST"),
		os.Getenv("TRAIN_DISPATCH_DB_PORT"),
		os.Getenv("TRAIN_DISPATCH_DB_USER"),
		os.Getenv("TRAIN_DISPATCH_DB_PASSWORD"),
		os.Getenv("TRAIN_DISPATCH_DB_NAME"),
	)
	conn, err := pgxpool.Connect(context.Background(), pgs)
	if err != nil {
		log.Fatalf("main.newPostgresConn: %v\n", err)
	}
	return conn
}

func newTrackerSvc() pkg.TrackerSvc {
	addr := os.Getenv("TRAIN_DISPATCH_TRACKER_ADDR")
	if addr == "" {
		return svc.NewNopTracker()
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*5)
	defer cancel()
	conn, err := grpc.DialContext(ctx, addr, grpc.WithInsecure(), grpc.WithBlock())
	if err != nil {
		log.Fatalf("main.newTrackerSvc: dial: %v; addr=%s\n", err, addr)
	}
	return svc.NewTracker(tracker.NewTrackerClient(conn))
}

func runHttpServer(router *httprouter.Router) {
	httpPort := os.Getenv("TRAIN_DISPATCH_HTTP_PORT")
	crtFile := os.Getenv("TRAIN_DISPATCH_HTTPS_CRT")
	keyFile := os.Getenv("TRAIN_DISPATCH_HTTPS_KEY")
	srv := &http.Server{
		Addr:    ":" + httpPort,
		Handler: router,
	}
	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		var err error
		if len(crtFile) > 0 {
			err = srv.ListenAndServeTLS(crtFile, keyFile)
		} else {
			err = srv.ListenAndServe()
		}
		if err != nil && err != http.ErrServerClosed {
			log.Fatalf("main.runHttpServer: serve http: %v; port = %s\n", err, httpPort)
		}
	}()
	log.Printf("Listening :%s for HTTP connections...\n", httpPort)
	<-done
	log.Print("Stopping the application...\n")
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("main.runHttpServer: server shutdown: %v\n", err)
	}
}
