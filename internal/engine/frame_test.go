package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mcoot/edgeguard/internal/model"
)

func TestIsFrame(t *testing.T) {
	assert.False(t, IsFrame([]byte(testConfig)))
	assert.True(t, IsFrame([]byte(deployFrame(0, 40, 5, "", ""))))
	assert.False(t, IsFrame([]byte("not json")))
}

func TestParseFrame(t *testing.T) {
	self := `[[[0,13,60.0,"3"],[27,13,60.0,"4"]],[],[[2,11,75.0,"5"]],[],[],[],[]]`
	enemy := `[[],[],[[13,27,75.0,"9"]],[[14,27,15.0,"10"]],[],[],[]]`
	f, err := ParseFrame([]byte(deployFrame(4, 12.5, 7, self, enemy)))
	require.NoError(t, err)

	assert.Equal(t, PhaseDeploy, f.Phase)
	assert.Equal(t, 4, f.Turn)
	assert.Equal(t, -1, f.FrameNumber)
	assert.Equal(t, 30.0, f.Self.Health)
	assert.Equal(t, 12.5, f.Self.Structural)
	assert.Equal(t, 7.0, f.Self.Mobile)
	assert.Equal(t, 5000.0, f.Self.TimeMS)
	assert.Equal(t, 5.0, f.Enemy.Mobile)

	require.Len(t, f.SelfUnits, 7)
	require.Len(t, f.SelfUnits[0], 2)
	assert.Equal(t, RawUnit{X: 27, Y: 13, Health: 60, ID: "4"}, f.SelfUnits[0][1])
	assert.Equal(t, RawUnit{X: 14, Y: 27, Health: 15, ID: "10"}, f.EnemyUnits[3][0])
}

func TestParseFrame_NumericIDs(t *testing.T) {
	self := `[[[0,13,60,7]],[],[],[],[],[],[]]`
	f, err := ParseFrame([]byte(deployFrame(0, 40, 5, self, "")))
	require.NoError(t, err)
	assert.Equal(t, "7", f.SelfUnits[0][0].ID)
}

func TestParseFrame_Errors(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{"not json", `{"turnInfo":[0,`},
		{"short turn info", `{"turnInfo":[0]}`},
		{"short stats", `{"turnInfo":[0,1,-1],"p1Stats":[30]}`},
		{"short unit entry", `{"turnInfo":[0,1,-1],"p1Units":[[[1,2]]]}`},
		{"bad coordinate", `{"turnInfo":[0,1,-1],"p1Units":[[["a",2,3]]]}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseFrame([]byte(tt.raw))
			assert.ErrorIs(t, err, model.ErrMalformedFrame)
		})
	}
}

func TestPhase_String(t *testing.T) {
	assert.Equal(t, "deploy", PhaseDeploy.String())
	assert.Equal(t, "end", PhaseEnd.String())
	assert.Equal(t, "phase(7)", Phase(7).String())
}
