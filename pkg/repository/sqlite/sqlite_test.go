package sqlite_test

import (
	"path/filepath"
	"testing"

	"github.com/fernet/fernet-go"
	"github.com/fluidattacks/roots/pkg/repository/sqlite"
	"github.com/fluidattacks/roots/pkg/repository/testhelper"
	"github.com/m-mizutani/gt"
)

func TestSQLiteRepository(t *testing.T) {
	var key fernet.Key
	gt.NoError(t, key.Generate())

	dbPath := filepath.Join(t.TempDir(), "roots.db")
	repo := gt.R1(sqlite.New(dbPath, key.Encode())).NoError(t)

	testhelper.TestAll(t, repo)
}
