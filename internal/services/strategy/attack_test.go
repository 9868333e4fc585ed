package strategy_test

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/mcoot/edgeguard/internal/model"
	"github.com/mcoot/edgeguard/internal/services/strategy"
)

type AttackSuite struct {
	suite.Suite
	policy *strategy.AttackPolicy
}

func TestAttackSuite(t *testing.T) {
	suite.Run(t, new(AttackSuite))
}

func (s *AttackSuite) SetupTest() {
	policy, err := strategy.NewAttackPolicy(testBindings(), strategy.DefaultAttackOptions())
	s.Require().NoError(err)
	s.policy = policy
}

func (s *AttackSuite) TestBelowThresholdDoesNothing() {
	gs := newFakeState(0, 9)

	out := s.policy.Apply(gs)

	s.Empty(out.Actions)
	s.NotEmpty(out.Skipped)
	s.Equal(0, gs.count("can:"))
	s.Equal(0, gs.count("spawn:"))
}

func (s *AttackSuite) TestAtThresholdDeploysOnce() {
	gs := newFakeState(0, 10)

	out := s.policy.Apply(gs)

	s.Equal([]model.Action{{Kind: kindArea, At: strategy.DefaultLaunch}}, out.Actions)
	s.Equal([]model.Action{{Kind: kindArea, At: model.At(3, 10)}}, gs.actions)
	s.Empty(out.Skipped)
}

func (s *AttackSuite) TestNeverMoreThanOneDeployment() {
	gs := newFakeState(0, 100)

	out := s.policy.Apply(gs)

	s.Len(out.Actions, 1)
	s.Equal(1, gs.count("spawn:"))
	s.Equal(1, gs.count("balance:mobile"))
}

func (s *AttackSuite) TestIllegalLaunchCoordinate() {
	gs := newFakeState(0, 20)
	gs.blocked[strategy.DefaultLaunch] = true

	out := s.policy.Apply(gs)

	s.Empty(out.Actions)
	s.Equal(1, gs.count("can:"))
	s.Equal(0, gs.count("spawn:"))
}

func (s *AttackSuite) TestCustomGate() {
	opts := strategy.DefaultAttackOptions()
	opts.Gate = "MP >= Threshold && Turn > 2"
	policy, err := strategy.NewAttackPolicy(testBindings(), opts)
	s.Require().NoError(err)

	early := newFakeState(0, 15)
	early.turn = 1
	out := policy.Apply(early)
	s.Empty(out.Actions)
	s.Equal("gate closed", out.Skipped)

	later := newFakeState(0, 15)
	later.turn = 3
	out = policy.Apply(later)
	s.Len(out.Actions, 1)
}

func (s *AttackSuite) TestGateCannotLowerThreshold() {
	opts := strategy.DefaultAttackOptions()
	opts.Gate = "MP >= 0"
	policy, err := strategy.NewAttackPolicy(testBindings(), opts)
	s.Require().NoError(err)

	out := policy.Apply(newFakeState(0, 5))

	s.Empty(out.Actions)
}

func (s *AttackSuite) TestInvalidGate() {
	opts := strategy.DefaultAttackOptions()
	opts.Gate = "MP >="
	_, err := strategy.NewAttackPolicy(testBindings(), opts)
	s.ErrorIs(err, model.ErrInvalidGate)

	opts.Gate = "MP + 1"
	_, err = strategy.NewAttackPolicy(testBindings(), opts)
	s.ErrorIs(err, model.ErrInvalidGate)
}

func (s *AttackSuite) TestEmptyGateUsesDefault() {
	opts := strategy.DefaultAttackOptions()
	opts.Gate = ""
	policy, err := strategy.NewAttackPolicy(testBindings(), opts)
	s.Require().NoError(err)

	s.Len(policy.Apply(newFakeState(0, 10)).Actions, 1)
	s.Empty(policy.Apply(newFakeState(0, 9.5)).Actions)
}
