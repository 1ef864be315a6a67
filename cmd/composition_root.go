package cmd

import (
	"foodbridge/internal/adapters/out/postgres"
	"foodbridge/internal/core/application/usecases/commands"
	"foodbridge/internal/core/application/usecases/queries"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
}

func NewCompositionRoot(_ Config, gormDB *gorm.DB) CompositionRoot {
	return CompositionRoot{
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
	}
}

func (c *CompositionRoot) CreateCreateDonationCommandHandler() commands.CreateDonationCommandHandler {
	var f commands.DonationUoWFactory = FuncDonationUoWFactory(func() commands.DonationUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateDonationCommandHandler(f)
}

func (c *CompositionRoot) CreateUpdateDonationCommandHandler() commands.UpdateDonationCommandHandler {
	var f commands.DonationUoWFactory = FuncDonationUoWFactory(func() commands.DonationUoW {
		return c.uowFactory.Create()
	})
	return commands.NewUpdateDonationCommandHandler(f)
}

func (c *CompositionRoot) CreateDeleteDonationCommandHandler() commands.DeleteDonationCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	return commands.NewDeleteDonationCommandHandler(f)
}

func (c *CompositionRoot) CreateRequestDonationCommandHandler() commands.RequestDonationCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	return commands.NewRequestDonationCommandHandler(f)
}

func (c *CompositionRoot) CreateRespondToRequestCommandHandler() commands.RespondToRequestCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	return commands.NewRespondToRequestCommandHandler(f)
}

func (c *CompositionRoot) CreateCancelRequestCommandHandler() commands.CancelRequestCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	return commands.NewCancelRequestCommandHandler(f)
}

func (c *CompositionRoot) CreateAdvanceDeliveryCommandHandler() commands.AdvanceDeliveryCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	return commands.NewAdvanceDeliveryCommandHandler(f)
}

func (c *CompositionRoot) CreateMarkDonationExpiredCommandHandler() commands.MarkDonationExpiredCommandHandler {
	var f commands.DonationUoWFactory = FuncDonationUoWFactory(func() commands.DonationUoW {
		return c.uowFactory.Create()
	})
	return commands.NewMarkDonationExpiredCommandHandler(f)
}

func (c *CompositionRoot) CreateExpireDonationsCommandHandler() commands.ExpireDonationsCommandHandler {
	var f commands.DonationUoWFactory = FuncDonationUoWFactory(func() commands.DonationUoW {
		return c.uowFactory.Create()
	})
	return commands.NewExpireDonationsCommandHandler(f)
}

func (c *CompositionRoot) CreateGetAvailableDonationsQueryHandler() queries.GetAvailableDonationsQueryHandler {
	return queries.NewGetAvailableDonationsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetMyDonationsQueryHandler() queries.GetMyDonationsQueryHandler {
	return queries.NewGetMyDonationsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetSentRequestsQueryHandler() queries.GetSentRequestsQueryHandler {
	return queries.NewGetSentRequestsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetReceivedRequestsQueryHandler() queries.GetReceivedRequestsQueryHandler {
	return queries.NewGetReceivedRequestsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetMyDeliveriesQueryHandler() queries.GetMyDeliveriesQueryHandler {
	return queries.NewGetMyDeliveriesQueryHandler(c.gormDB)
}

type FuncDonationUoWFactory func() commands.DonationUoW

func (f FuncDonationUoWFactory) Create() commands.DonationUoW {
	return f()
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}
