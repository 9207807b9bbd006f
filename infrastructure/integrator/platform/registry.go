package platform

import (
	"github.com/vfg2006/ad-ops-api/internal/domain"
)

// capabilities vale mesmo para plataformas sem implementação, para a interface desabilitar ações
var capabilities = map[domain.Platform]domain.Capabilities{
	domain.PlatformMeta:      {Sync: true, Metrics: true, Pause: true, Reactivate: true},
	domain.PlatformGoogle:    {Sync: true, Metrics: true, Pause: false, Reactivate: false},
	domain.PlatformPinterest: {Sync: true, Metrics: true, Pause: true, Reactivate: true},
	domain.PlatformTikTok:    {Sync: true, Metrics: true, Pause: true, Reactivate: true},
	domain.PlatformLinkedIn:  {},
}

type Registry struct {
	clients map[domain.Platform]Client
}

func NewRegistry(clients map[domain.Platform]Client) *Registry {
	registered := make(map[domain.Platform]Client, len(clients))
	for p, c := range clients {
		if c != nil {
			registered[p] = c
		}
	}

	return &Registry{clients: registered}
}

func (r *Registry) Get(p domain.Platform) (Client, bool) {
	c, ok := r.clients[p]
	return c, ok
}

// Capabilities devolve tudo false para plataformas desconhecidas
func (r *Registry) Capabilities(p domain.Platform) domain.Capabilities {
	return capabilities[p]
}

func (r *Registry) Platforms() []domain.PlatformInfo {
	infos := make([]domain.PlatformInfo, 0, len(domain.KnownPlatforms))

	for _, p := range domain.KnownPlatforms {
		_, implemented := r.clients[p]
		infos = append(infos, domain.PlatformInfo{
			Platform:     p,
			Implemented:  implemented,
			Capabilities: r.Capabilities(p),
		})
	}

	return infos
}
