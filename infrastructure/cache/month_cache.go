// Package cache implementa o cache mensal de dois níveis usado pelo range
// fetcher: um mapa em processo consultado primeiro, com write-through para
// um armazenamento durável chave-valor.
package cache

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/cake-manager-api/internal/domain"
)

// monthKeyPrefix compõe a chave durável de um mês: "cm:month:{YYYY-MM}"
const monthKeyPrefix = "cm:month:"

// DurableStore é o nível durável do cache. Implementado por RedisStore em
// produção e por MemoryStore nos testes.
type DurableStore interface {
	// Get devolve o valor da chave e um indicador de existência
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, value []byte) error
	Del(ctx context.Context, key string) error
}

// MonthCache guarda os dados brutos pré-computados de meses fechados,
// chaveados por YYYY-MM e invalidados por carimbo de versão. O cache nunca
// falha uma busca de intervalo: qualquer problema no nível durável é
// rebaixado a um miss com warning.
type MonthCache struct {
	mu      sync.RWMutex
	entries map[string]*domain.MonthCacheEntry
	store   DurableStore
}

// NewMonthCache cria um cache mensal. store pode ser nil; nesse caso o cache
// opera apenas em memória.
func NewMonthCache(store DurableStore) *MonthCache {
	return &MonthCache{
		entries: make(map[string]*domain.MonthCacheEntry),
		store:   store,
	}
}

// Get devolve a entrada cacheada do mês ym, ou nil em caso de miss.
// Um miss no nível em memória tenta o nível durável; falha de
// deserialização é tratada como miss, nunca como erro.
func (c *MonthCache) Get(ctx context.Context, ym string) *domain.MonthCacheEntry {
	c.mu.RLock()
	entry, ok := c.entries[ym]
	c.mu.RUnlock()

	if ok {
		return entry
	}

	if c.store == nil {
		return nil
	}

	data, found, err := c.store.Get(ctx, monthKeyPrefix+ym)
	if err != nil {
		logrus.WithError(err).WithField("ym", ym).
			Warn("Erro ao ler o cache mensal durável, tratando como miss")
		return nil
	}
	if !found {
		return nil
	}

	entry = &domain.MonthCacheEntry{}
	if err := json.Unmarshal(data, entry); err != nil {
		logrus.WithError(err).WithField("ym", ym).
			Warn("Entrada corrompida no cache mensal durável, tratando como miss")
		return nil
	}

	// Popula o nível em memória para as próximas leituras
	c.mu.Lock()
	c.entries[ym] = entry
	c.mu.Unlock()

	return entry
}

// Set grava a entrada nos dois níveis de forma síncrona. Falha no nível
// durável não é propagada: a entrada em memória continua servindo o
// processo corrente.
func (c *MonthCache) Set(ctx context.Context, ym string, entry *domain.MonthCacheEntry) {
	if entry == nil {
		return
	}

	c.mu.Lock()
	c.entries[ym] = entry
	c.mu.Unlock()

	if c.store == nil {
		return
	}

	data, err := json.Marshal(entry)
	if err != nil {
		logrus.WithError(err).WithField("ym", ym).
			Warn("Erro ao serializar entrada do cache mensal")
		return
	}

	if err := c.store.Set(ctx, monthKeyPrefix+ym, data); err != nil {
		logrus.WithError(err).WithField("ym", ym).
			Warn("Erro ao gravar no cache mensal durável")
	}
}

// Clear remove a entrada do mês dos dois níveis
func (c *MonthCache) Clear(ctx context.Context, ym string) {
	c.mu.Lock()
	delete(c.entries, ym)
	c.mu.Unlock()

	if c.store == nil {
		return
	}

	if err := c.store.Del(ctx, monthKeyPrefix+ym); err != nil {
		logrus.WithError(err).WithField("ym", ym).
			Warn("Erro ao remover entrada do cache mensal durável")
	}
}

// Reset esvazia o nível em memória. Existe para isolar testes; o nível
// durável não é tocado.
func (c *MonthCache) Reset() {
	c.mu.Lock()
	c.entries = make(map[string]*domain.MonthCacheEntry)
	c.mu.Unlock()
}

// NewEntry monta uma entrada de cache carimbada com a versão corrente do mês
func NewEntry(version int64, raw []*domain.RawDayRecord) *domain.MonthCacheEntry {
	return &domain.MonthCacheEntry{
		Version:  version,
		Payload:  domain.MonthCachePayload{Raw: raw},
		CachedAt: time.Now().UnixMilli(),
	}
}
