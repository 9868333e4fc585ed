package factory

import (
	"context"
	"strings"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mcoot/edgeguard/internal/config"
	"github.com/mcoot/edgeguard/internal/engine"
	"github.com/mcoot/edgeguard/internal/model"
	"github.com/mcoot/edgeguard/internal/storage/memory"
	redisstorage "github.com/mcoot/edgeguard/internal/storage/redis"
)

const gameConfig = `{"unitInformation":[{"shorthand":"FF","cost1":1},{"shorthand":"EF","cost1":4},` +
	`{"shorthand":"DF","cost1":2},{"shorthand":"PI","cost2":1},{"shorthand":"EI","cost2":3},{"shorthand":"SI","cost2":1}]}`

const deployFrame = `{"turnInfo":[0,0,-1],"p1Stats":[30,40,5,0],"p2Stats":[30,40,5,0],` +
	`"p1Units":[[],[],[],[],[],[]],"p2Units":[[],[],[],[],[],[]]}`

func TestNew_DefaultsToMemory(t *testing.T) {
	app, err := New(Config{Settings: config.Settings{Strategy: DefaultStrategySettings()}})
	require.NoError(t, err)
	defer func() { _ = app.Close() }()

	_, ok := app.Storage.(*memory.Storage)
	assert.True(t, ok)
	assert.NotNil(t, app.HistoryService)
	assert.NotNil(t, app.AlgoService)
}

func TestNew_Redis(t *testing.T) {
	mini := miniredis.RunT(t)

	settings := config.Settings{Strategy: DefaultStrategySettings()}
	settings.Storage.Type = StorageTypeRedis
	settings.Storage.Redis.URL = "redis://" + mini.Addr()

	app, err := New(Config{Settings: settings})
	require.NoError(t, err)
	_, ok := app.Storage.(*redisstorage.Storage)
	assert.True(t, ok)
	assert.NoError(t, app.Close())
}

func TestNew_RedisWithoutURL(t *testing.T) {
	settings := config.Settings{}
	settings.Storage.Type = StorageTypeRedis
	_, err := New(Config{Settings: settings})
	assert.Error(t, err)
}

func TestNew_InvalidStorage(t *testing.T) {
	settings := config.Settings{}
	settings.Storage.Type = "disk"
	_, err := New(Config{Settings: settings})
	assert.ErrorContains(t, err, "invalid storage type")
}

func TestTestApp_PlaysTurnAndRecordsHistory(t *testing.T) {
	app := NewTestApp()
	app.MockRandom.Queue("testsession")
	ctx := context.Background()

	input := gameConfig + "\n" + deployFrame + "\n"
	require.NoError(t, engine.Run(ctx, strings.NewReader(input), app.AlgoService, app.Logger))

	assert.Equal(t, model.SessionID("testsession"), app.ActiveSessionID())
	lines := strings.Split(strings.TrimSpace(app.Out.String()), "\n")
	require.Len(t, lines, 2)
	assert.True(t, strings.HasPrefix(lines[0], `[["DF",2,11]`))
	assert.Equal(t, "[]", lines[1])

	turns, err := app.HistoryService.GetTurns(ctx, "testsession")
	require.NoError(t, err)
	require.Len(t, turns, 1)
	assert.Equal(t, app.MockClock.Now(), turns[0].SubmittedAt)
}
