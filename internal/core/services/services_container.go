package services

import (
	portsclients "github.com/SscSPs/stock_trading_app/internal/core/ports/clients"
	portsrepo "github.com/SscSPs/stock_trading_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/stock_trading_app/internal/core/ports/services"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(repos portsrepo.RepositoryProvider, market portsclients.MarketClient, events portsclients.StockEventPublisher) *portssvc.ServiceContainer {
	return &portssvc.ServiceContainer{
		Stock: NewStockService(repos.StockRepo, market, WithStockEventPublisher(events)),
	}
}
