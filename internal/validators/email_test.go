package validators

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeEmail(t *testing.T) {
	assert.Equal(t, "asha@studio.test", NormalizeEmail("  Asha@Studio.TEST "))
}

func TestIsEmailDomainValid_RejectsMalformed(t *testing.T) {
	ctx := context.Background()
	assert.False(t, IsEmailDomainValid(ctx, "no-at-sign"))
	assert.False(t, IsEmailDomainValid(ctx, "trailing@"))
}
