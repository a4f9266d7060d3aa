package client

import (
	"context"

	"github.com/BruksfildServices01/studio-manager/internal/audit"
	"github.com/BruksfildServices01/studio-manager/internal/domain/studio"
	"github.com/BruksfildServices01/studio-manager/internal/models"
	"github.com/BruksfildServices01/studio-manager/internal/tenancy"
)

// ======================================================
// LIST
// ======================================================

type ListClients struct {
	repo studio.Repository
}

func NewListClients(repo studio.Repository) *ListClients {
	return &ListClients{repo: repo}
}

func (uc *ListClients) Execute(
	ctx context.Context,
	caller tenancy.Caller,
	search string,
) ([]models.Client, error) {

	if err := caller.Validate(); err != nil {
		return nil, err
	}

	clients, err := uc.repo.ListClients(ctx, caller, search)
	if err != nil {
		return nil, err
	}
	if clients == nil {
		clients = []models.Client{}
	}
	return clients, nil
}

// ======================================================
// CREATE
// ======================================================

type CreateClient struct {
	repo  studio.Repository
	audit *audit.Dispatcher
}

func NewCreateClient(repo studio.Repository, audit *audit.Dispatcher) *CreateClient {
	return &CreateClient{repo: repo, audit: audit}
}

func (uc *CreateClient) Execute(
	ctx context.Context,
	caller tenancy.Caller,
	in studio.ClientInput,
) (*models.Client, error) {

	if err := caller.Validate(); err != nil {
		return nil, err
	}

	var client models.Client
	if err := in.ApplyTo(&client); err != nil {
		return nil, err
	}

	if err := uc.repo.CreateClient(ctx, caller, &client); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		AccountID: caller.AccountID,
		Action:    "client_created",
		Entity:    "client",
		EntityID:  &client.ID,
	})

	return &client, nil
}

// ======================================================
// UPDATE
// ======================================================

type UpdateClient struct {
	repo  studio.Repository
	audit *audit.Dispatcher
}

func NewUpdateClient(repo studio.Repository, audit *audit.Dispatcher) *UpdateClient {
	return &UpdateClient{repo: repo, audit: audit}
}

func (uc *UpdateClient) Execute(
	ctx context.Context,
	caller tenancy.Caller,
	id uint,
	in studio.ClientInput,
) (*models.Client, error) {

	if err := caller.Validate(); err != nil {
		return nil, err
	}

	client, err := uc.repo.GetClient(ctx, caller, id)
	if err != nil {
		return nil, err
	}

	if err := in.ApplyTo(client); err != nil {
		return nil, err
	}

	if err := uc.repo.UpdateClient(ctx, caller, client); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		AccountID: caller.AccountID,
		Action:    "client_updated",
		Entity:    "client",
		EntityID:  &client.ID,
	})

	return client, nil
}

// ======================================================
// DELETE
// ======================================================

// DeleteClient removes only the client row; its events and payments
// remain and render without a client.
type DeleteClient struct {
	repo  studio.Repository
	audit *audit.Dispatcher
}

func NewDeleteClient(repo studio.Repository, audit *audit.Dispatcher) *DeleteClient {
	return &DeleteClient{repo: repo, audit: audit}
}

func (uc *DeleteClient) Execute(ctx context.Context, caller tenancy.Caller, id uint) error {
	if err := caller.Validate(); err != nil {
		return err
	}

	if err := uc.repo.DeleteClient(ctx, caller, id); err != nil {
		return err
	}

	uc.audit.Dispatch(audit.Event{
		AccountID: caller.AccountID,
		Action:    "client_deleted",
		Entity:    "client",
		EntityID:  &id,
	})
	return nil
}
