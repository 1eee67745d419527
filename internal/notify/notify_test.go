package notify

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func TestBuffer_Drain(t *testing.T) {
	var b Buffer
	assert.Equal(t, []Notice{}, b.Drain())

	Successf(&b, "%s added to cart", "Hemp Tote Bag")
	Errorf(&b, "Invalid coupon code")

	assert.Equal(t, []Notice{
		{Level: Success, Message: "Hemp Tote Bag added to cart"},
		{Level: Error, Message: "Invalid coupon code"},
	}, b.Drain())
	assert.Empty(t, b.Drain())
}

func TestMulti(t *testing.T) {
	var a, b Buffer
	n := Multi(&a, Log(zap.NewNop()), Discard, &b)

	Successf(n, "Cart cleared")

	assert.Len(t, a.Drain(), 1)
	assert.Len(t, b.Drain(), 1)
}
