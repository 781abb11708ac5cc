package scheduler

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	wishlistmocks "github.com/bronzebyte/customer-stats-api/infrastructure/integrator/wishlist/mocks"
	"github.com/bronzebyte/customer-stats-api/internal/config"
)

func probeService(t *testing.T) (*WishlistProbeService, *wishlistmocks.MockWishlistIntegrator) {
	t.Helper()

	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	mockWishlist := wishlistmocks.NewMockWishlistIntegrator(ctrl)

	cfg := &config.Config{
		WishlistProbe: config.WishlistProbe{
			CronSchedule: "0 */6 * * *",
			Enabled:      true,
		},
	}

	return NewWishlistProbeService(mockWishlist, cfg), mockWishlist
}

func TestWishlistProbeService_Probe(t *testing.T) {
	service, mockWishlist := probeService(t)

	mockWishlist.EXPECT().CheckConnection().Return(true, nil)

	assert.False(t, service.Available())

	service.probe()

	assert.True(t, service.Available())

	status := service.Status()
	assert.Equal(t, true, status["available"])
	assert.Equal(t, false, status["running"])
	assert.Equal(t, "0 */6 * * *", status["cron_schedule"])
}

func TestWishlistProbeService_Probe_ServicoFora(t *testing.T) {
	service, mockWishlist := probeService(t)

	mockWishlist.EXPECT().CheckConnection().Return(true, nil)
	service.probe()
	assert.True(t, service.Available())

	// Queda do serviço derruba a disponibilidade na verificação seguinte
	mockWishlist.EXPECT().CheckConnection().Return(false, errors.New("conexão recusada"))
	service.probe()
	assert.False(t, service.Available())
}

func TestWishlistProbeService_Probe_NaoExecutaEmParalelo(t *testing.T) {
	service, _ := probeService(t)

	// Com uma verificação marcada como em andamento, a nova chamada não
	// toca no integrador (nenhuma expectativa registrada no mock).
	service.probeMutex.Lock()
	service.probeRunning = true
	service.probeMutex.Unlock()

	service.probe()

	status := service.Status()
	assert.Equal(t, true, status["running"])
}
