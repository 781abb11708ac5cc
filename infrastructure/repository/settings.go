package repository

import (
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/bronzebyte/customer-stats-api/infrastructure/database/postgres"
	"github.com/bronzebyte/customer-stats-api/internal/domain"
)

const settingsTable = "store_settings s"

type SettingsRepository interface {
	Get() (*domain.StoreSettings, error)
	Save(settings *domain.StoreSettings) error
}

type settingsRepository struct {
	conn *postgres.Connection
}

func NewSettingsRepository(conn *postgres.Connection) SettingsRepository {
	return &settingsRepository{
		conn: conn,
	}
}

// Get retorna a linha única de configurações. Sem linha no banco, devolve o
// padrão com o dashboard habilitado.
func (r *settingsRepository) Get() (*domain.StoreSettings, error) {
	query, args, err := squirrel.
		Select("s.customer_stats_enabled, s.updated_at").
		From(settingsTable).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	row := r.conn.QueryRow(query, args...)

	settings := &domain.StoreSettings{}
	err = row.Scan(&settings.CustomerStatsEnabled, &settings.UpdatedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return &domain.StoreSettings{CustomerStatsEnabled: true}, nil
		}
		return nil, fmt.Errorf("erro ao escanear configurações: %w", err)
	}

	return settings, nil
}

func (r *settingsRepository) Save(settings *domain.StoreSettings) error {
	query, args, err := squirrel.StatementBuilder.
		Insert("store_settings").
		Columns("id", "customer_stats_enabled").
		Values(1, settings.CustomerStatsEnabled).
		Suffix(`
			ON CONFLICT (id) DO UPDATE SET
				customer_stats_enabled = EXCLUDED.customer_stats_enabled,
				updated_at = NOW()
		`).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	if _, err := r.conn.Exec(query, args...); err != nil {
		return fmt.Errorf("erro ao executar a query: %w", err)
	}

	return nil
}
