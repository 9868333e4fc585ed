package engine

import (
	"fmt"
	"strings"
)

// testConfig is one line, as the engine sends it
const testConfig = `{"unitInformation":[` +
	`{"shorthand":"FF","display":"Filter","cost1":1},` +
	`{"shorthand":"EF","display":"Encryptor","cost1":4},` +
	`{"shorthand":"DF","display":"Destructor","cost1":2},` +
	`{"shorthand":"PI","display":"Ping","cost2":1},` +
	`{"shorthand":"EI","display":"EMP","cost2":3},` +
	`{"shorthand":"SI","display":"Scrambler","cost2":1},` +
	`{"shorthand":"RM","display":"Remove"}` +
	`],"resources":{"turnIntervalForBitSchedule":10}}`

// deployFrame renders a deploy-phase frame. selfUnits and enemyUnits are
// per-type JSON lists, e.g. `[[[0,13,60,"1"]],[],[],[],[],[],[]]`.
func deployFrame(turn int, cores, bits float64, selfUnits, enemyUnits string) string {
	return frameLine(0, turn, cores, bits, selfUnits, enemyUnits)
}

func frameLine(phase, turn int, cores, bits float64, selfUnits, enemyUnits string) string {
	if selfUnits == "" {
		selfUnits = emptyUnits()
	}
	if enemyUnits == "" {
		enemyUnits = emptyUnits()
	}
	return fmt.Sprintf(
		`{"p2Units":%s,"turnInfo":[%d,%d,-1],"p1Stats":[30.0,%g,%g,5000],"p1Units":%s,"p2Stats":[30.0,12.0,5.0,4000],"events":{}}`,
		enemyUnits, phase, turn, cores, bits, selfUnits,
	)
}

func emptyUnits() string {
	return "[" + strings.TrimSuffix(strings.Repeat("[],", 7), ",") + "]"
}
