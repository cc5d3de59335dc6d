package dbsetup

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net"
	"strconv"
	"strings"
	"time"

	"github.com/go-sql-driver/mysql"
	"github.com/sirupsen/logrus"
)

type Options struct {
	Host         string
	Port         int
	RootUser     string
	RootPassword string
	User         string
	Password     string
	Database     string
	SchemaFile   string
}

func (o Options) Validate() error {
	var missing []string
	for _, f := range []struct{ name, val string }{
		{"host", o.Host},
		{"root user", o.RootUser},
		{"new user", o.User},
		{"database name", o.Database},
		{"schema file", o.SchemaFile},
	} {
		if strings.TrimSpace(f.val) == "" {
			missing = append(missing, f.name)
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("missing %s", strings.Join(missing, ", "))
	}
	if o.Port <= 0 || o.Port > 65535 {
		return fmt.Errorf("invalid port %d", o.Port)
	}
	return nil
}

// DSN returns the root connection string. No default database is selected.
func DSN(o Options) string {
	cfg := mysql.NewConfig()
	cfg.User = o.RootUser
	cfg.Passwd = o.RootPassword
	cfg.Net = "tcp"
	cfg.Addr = net.JoinHostPort(o.Host, strconv.Itoa(o.Port))
	cfg.Timeout = 10 * time.Second
	return cfg.FormatDSN()
}

// Open connects as the root user and pings the server.
func Open(ctx context.Context, o Options) (*sql.DB, error) {
	db, err := sql.Open("mysql", DSN(o))
	if err != nil {
		return nil, opErr("connect", err)
	}
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, opErr("connect", err)
	}
	return db, nil
}

// Bootstrap runs the whole setup on one session so USE carries over to the
// schema statements. The schema file is read before anything is created.
func Bootstrap(ctx context.Context, db *sql.DB, o Options) error {
	statements, err := ReadSchema(o.SchemaFile)
	if err != nil {
		return err
	}

	conn, err := db.Conn(ctx)
	if err != nil {
		return opErr("connect", err)
	}
	defer conn.Close()

	admin := []struct{ op, stmt string }{
		{"create database", "CREATE DATABASE " + quoteIdent(o.Database)},
		{"create user", fmt.Sprintf("CREATE USER %s@'%%' IDENTIFIED BY %s", quoteString(o.User), quoteString(o.Password))},
		{"grant privileges", fmt.Sprintf("GRANT ALL PRIVILEGES ON *.* TO %s@'%%' WITH GRANT OPTION", quoteString(o.User))},
		{"use database", "USE " + quoteIdent(o.Database)},
	}
	for _, a := range admin {
		logrus.Infof("[db] %s", a.op)
		if _, err := conn.ExecContext(ctx, a.stmt); err != nil {
			return opErr(a.op, err)
		}
	}

	tx, err := conn.BeginTx(ctx, nil)
	if err != nil {
		return opErr("begin", err)
	}
	logrus.Infof("[db] executing %d schema statements", len(statements))
	for i, stmt := range statements {
		if _, err := tx.ExecContext(ctx, stmt); err != nil {
			if rbErr := tx.Rollback(); rbErr != nil && !errors.Is(rbErr, sql.ErrTxDone) {
				logrus.Warnf("[db] rollback failed: %v", rbErr)
			}
			return opErr(fmt.Sprintf("schema statement %d", i+1), err)
		}
	}
	if err := tx.Commit(); err != nil {
		return opErr("commit", err)
	}
	return nil
}

func quoteIdent(s string) string {
	return "`" + strings.ReplaceAll(s, "`", "``") + "`"
}

func quoteString(s string) string {
	r := strings.NewReplacer(`\`, `\\`, `'`, `\'`)
	return "'" + r.Replace(s) + "'"
}
