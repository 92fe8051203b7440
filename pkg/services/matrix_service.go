package services

import (
	"context"
	"fmt"
	"time"

	"github.com/docmatrix-ai/docmatrix/ent"
	entmatrix "github.com/docmatrix-ai/docmatrix/ent/matrix"
	"github.com/docmatrix-ai/docmatrix/ent/matrixcell"
)

// MatrixService manages matrix CRUD. Structure mutation (entity sets,
// cell materialization, job enqueue) lives in the matrix engine.
type MatrixService struct {
	client *ent.Client
}

// NewMatrixService creates a new MatrixService.
func NewMatrixService(client *ent.Client) *MatrixService {
	if client == nil {
		panic("NewMatrixService: client must not be nil")
	}
	return &MatrixService{client: client}
}

// CreateMatrix creates a matrix in a company workspace.
func (s *MatrixService) CreateMatrix(ctx context.Context, companyID int, name, workspaceID string, matrixType entmatrix.MatrixType) (*ent.Matrix, error) {
	if name == "" {
		return nil, NewValidationError("name", "matrix name is required")
	}
	m, err := s.client.Matrix.Create().
		SetCompanyID(companyID).
		SetName(name).
		SetWorkspaceID(workspaceID).
		SetMatrixType(matrixType).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create matrix: %w", err)
	}
	return m, nil
}

// GetMatrix returns a live matrix with its entity sets and members.
func (s *MatrixService) GetMatrix(ctx context.Context, companyID, matrixID int) (*ent.Matrix, error) {
	m, err := s.client.Matrix.Query().
		Where(
			entmatrix.ID(matrixID),
			entmatrix.CompanyID(companyID),
			entmatrix.DeletedAtIsNil(),
		).
		WithEntitySets(func(q *ent.EntitySetQuery) {
			q.WithMembers()
		}).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, fmt.Errorf("matrix %d: %w", matrixID, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to query matrix: %w", err)
	}
	return m, nil
}

// ListMatrices returns a workspace's live matrices, newest first. An
// empty workspaceID lists every matrix of the company.
func (s *MatrixService) ListMatrices(ctx context.Context, companyID int, workspaceID string) ([]*ent.Matrix, error) {
	q := s.client.Matrix.Query().
		Where(
			entmatrix.CompanyID(companyID),
			entmatrix.DeletedAtIsNil(),
		)
	if workspaceID != "" {
		q = q.Where(entmatrix.WorkspaceID(workspaceID))
	}
	matrices, err := q.Order(ent.Desc(entmatrix.FieldCreatedAt)).All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list matrices: %w", err)
	}
	return matrices, nil
}

// CellProgress summarizes cell statuses for one matrix.
type CellProgress struct {
	Total      int `json:"total"`
	Pending    int `json:"pending"`
	Processing int `json:"processing"`
	Completed  int `json:"completed"`
	Failed     int `json:"failed"`
}

// Progress counts the matrix's live cells by status.
func (s *MatrixService) Progress(ctx context.Context, companyID, matrixID int) (*CellProgress, error) {
	if _, err := s.GetMatrix(ctx, companyID, matrixID); err != nil {
		return nil, err
	}

	var rows []struct {
		Status matrixcell.Status `json:"status"`
		Count  int               `json:"count"`
	}
	err := s.client.MatrixCell.Query().
		Where(
			matrixcell.MatrixID(matrixID),
			matrixcell.DeletedAtIsNil(),
		).
		GroupBy(matrixcell.FieldStatus).
		Aggregate(ent.Count()).
		Scan(ctx, &rows)
	if err != nil {
		return nil, fmt.Errorf("failed to count cells: %w", err)
	}

	progress := &CellProgress{}
	for _, row := range rows {
		progress.Total += row.Count
		switch row.Status {
		case matrixcell.StatusPending:
			progress.Pending = row.Count
		case matrixcell.StatusProcessing:
			progress.Processing = row.Count
		case matrixcell.StatusCompleted:
			progress.Completed = row.Count
		case matrixcell.StatusFailed:
			progress.Failed = row.Count
		}
	}
	return progress, nil
}

// DeleteMatrix soft-deletes a matrix. Cells and entity sets stay in
// place; every read path filters on the matrix's deleted_at.
func (s *MatrixService) DeleteMatrix(ctx context.Context, companyID, matrixID int) error {
	n, err := s.client.Matrix.Update().
		Where(
			entmatrix.ID(matrixID),
			entmatrix.CompanyID(companyID),
			entmatrix.DeletedAtIsNil(),
		).
		SetDeletedAt(time.Now()).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("failed to delete matrix: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("matrix %d: %w", matrixID, ErrNotFound)
	}
	return nil
}
