package chat

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPushMessage_KeepsLastFive(t *testing.T) {
	cc := NewContext()
	for _, msg := range []string{"um", "dois", "três", "quatro", "cinco", "seis"} {
		cc.PushMessage(msg)
	}

	require.Len(t, cc.LastMessages, 5)
	require.Equal(t, []string{"dois", "três", "quatro", "cinco", "seis"}, cc.LastMessages)
}

func TestClone_IsIndependent(t *testing.T) {
	cc := NewContext()
	cc.PushMessage("oi")
	cc.OrderedPizza = true
	cc.OrderTotal = 38.90

	cp := cc.Clone()
	cp.PushMessage("quero pizza")
	cp.OrderedDrink = true
	cp.OrderTotal += 5.50

	require.Equal(t, []string{"oi"}, cc.LastMessages)
	require.False(t, cc.OrderedDrink)
	require.InDelta(t, 38.90, cc.OrderTotal, 0.001)

	require.Equal(t, []string{"oi", "quero pizza"}, cp.LastMessages)
	require.True(t, cp.OrderedDrink)
}
