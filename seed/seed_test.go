package seed

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"cricket/store"
	"cricket/testutil"

	"github.com/stretchr/testify/require"
)

const sample = `
teams:
  - name: Chennai Super Kings
    city: Chennai
    players:
      - name: Dhoni
        age: 42
        experience: 20
        role: Wicket-Keeper
        shirt_no: 7
      - name: Jadeja
        age: 35
        experience: 15
        role: All-Rounder
        shirt_no: 8
  - name: Mumbai Indians
    city: Mumbai
`

func TestLoadAndApply(t *testing.T) {
	path := filepath.Join(t.TempDir(), "seed.yaml")
	require.NoError(t, os.WriteFile(path, []byte(sample), 0o644))

	f, err := Load(path)
	require.NoError(t, err)
	require.Len(t, f.Teams, 2)
	require.Len(t, f.Teams[0].Players, 2)
	require.EqualValues(t, 7, f.Teams[0].Players[0].ShirtNo)

	st := store.New(testutil.NewTestDB(t), store.Options{})
	res, err := Apply(context.Background(), st, f)
	require.NoError(t, err)
	require.Equal(t, Result{Teams: 2, Players: 2}, res)

	rows, err := st.TeamSummaries(context.Background())
	require.NoError(t, err)
	require.Len(t, rows, 2)
	require.EqualValues(t, 2, rows[0].PlayerCount)
	require.EqualValues(t, 0, rows[1].PlayerCount)
}

func TestApplyRejectsInvalidFileWithoutWriting(t *testing.T) {
	f, err := Parse([]byte(`
teams:
  - name: Good
    city: Pune
  - name: Bad
    city: Delhi
    players:
      - name: Nobody
        role: Captain
`))
	require.NoError(t, err)

	st := store.New(testutil.NewTestDB(t), store.Options{})
	_, err = Apply(context.Background(), st, f)
	require.Error(t, err)
	require.Contains(t, err.Error(), "Captain is not one of the available choices")

	teams, err := st.ListTeams(context.Background())
	require.NoError(t, err)
	require.Empty(t, teams)
}

func TestParseMalformed(t *testing.T) {
	_, err := Parse([]byte("teams: [oops"))
	require.Error(t, err)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
}

func TestApplyRollsBackOnStoreError(t *testing.T) {
	f, err := Parse([]byte(`
teams:
  - name: Good
    city: Pune
    players:
      - name: A
        role: Batsman
        shirt_no: 7
      - name: B
        role: Bowler
        shirt_no: 7
`))
	require.NoError(t, err)
	require.NoError(t, f.Validate())

	st := store.New(testutil.NewTestDB(t), store.Options{UniqueShirtNo: true})
	res, err := Apply(context.Background(), st, f)
	require.ErrorIs(t, err, store.ErrShirtNumberTaken)
	require.Equal(t, Result{}, res)

	rows, err := st.TeamSummaries(context.Background())
	require.NoError(t, err)
	require.Empty(t, rows)
}
