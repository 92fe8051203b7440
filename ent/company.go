// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/docmatrix-ai/docmatrix/ent/company"
	"github.com/docmatrix-ai/docmatrix/ent/subscription"
)

// Company is the model entity for the Company schema.
type Company struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// Name holds the value of the "name" field.
	Name string `json:"name,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// DeletedAt holds the value of the "deleted_at" field.
	DeletedAt *time.Time `json:"deleted_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the CompanyQuery when eager-loading is set.
	Edges        CompanyEdges `json:"edges"`
	selectValues sql.SelectValues
}

// CompanyEdges holds the relations/edges for other nodes in the graph.
type CompanyEdges struct {
	// Subscription holds the value of the subscription edge.
	Subscription *Subscription `json:"subscription,omitempty"`
	// Documents holds the value of the documents edge.
	Documents []*Document `json:"documents,omitempty"`
	// Matrices holds the value of the matrices edge.
	Matrices []*Matrix `json:"matrices,omitempty"`
	// UsageEvents holds the value of the usage_events edge.
	UsageEvents []*UsageEvent `json:"usage_events,omitempty"`
	// ServiceAccounts holds the value of the service_accounts edge.
	ServiceAccounts []*ServiceAccount `json:"service_accounts,omitempty"`
	// Workflows holds the value of the workflows edge.
	Workflows []*Workflow `json:"workflows,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [6]bool
}

// SubscriptionOrErr returns the Subscription value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e CompanyEdges) SubscriptionOrErr() (*Subscription, error) {
	if e.Subscription != nil {
		return e.Subscription, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: subscription.Label}
	}
	return nil, &NotLoadedError{edge: "subscription"}
}

// DocumentsOrErr returns the Documents value or an error if the edge
// was not loaded in eager-loading.
func (e CompanyEdges) DocumentsOrErr() ([]*Document, error) {
	if e.loadedTypes[1] {
		return e.Documents, nil
	}
	return nil, &NotLoadedError{edge: "documents"}
}

// MatricesOrErr returns the Matrices value or an error if the edge
// was not loaded in eager-loading.
func (e CompanyEdges) MatricesOrErr() ([]*Matrix, error) {
	if e.loadedTypes[2] {
		return e.Matrices, nil
	}
	return nil, &NotLoadedError{edge: "matrices"}
}

// UsageEventsOrErr returns the UsageEvents value or an error if the edge
// was not loaded in eager-loading.
func (e CompanyEdges) UsageEventsOrErr() ([]*UsageEvent, error) {
	if e.loadedTypes[3] {
		return e.UsageEvents, nil
	}
	return nil, &NotLoadedError{edge: "usage_events"}
}

// ServiceAccountsOrErr returns the ServiceAccounts value or an error if the edge
// was not loaded in eager-loading.
func (e CompanyEdges) ServiceAccountsOrErr() ([]*ServiceAccount, error) {
	if e.loadedTypes[4] {
		return e.ServiceAccounts, nil
	}
	return nil, &NotLoadedError{edge: "service_accounts"}
}

// WorkflowsOrErr returns the Workflows value or an error if the edge
// was not loaded in eager-loading.
func (e CompanyEdges) WorkflowsOrErr() ([]*Workflow, error) {
	if e.loadedTypes[5] {
		return e.Workflows, nil
	}
	return nil, &NotLoadedError{edge: "workflows"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Company) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case company.FieldID:
			values[i] = new(sql.NullInt64)
		case company.FieldName:
			values[i] = new(sql.NullString)
		case company.FieldCreatedAt, company.FieldDeletedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Company fields.
func (_m *Company) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case company.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case company.FieldName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field name", values[i])
			} else if value.Valid {
				_m.Name = value.String
			}
		case company.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case company.FieldDeletedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field deleted_at", values[i])
			} else if value.Valid {
				_m.DeletedAt = new(time.Time)
				*_m.DeletedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Company.
// This includes values selected through modifiers, order, etc.
func (_m *Company) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QuerySubscription queries the "subscription" edge of the Company entity.
func (_m *Company) QuerySubscription() *SubscriptionQuery {
	return NewCompanyClient(_m.config).QuerySubscription(_m)
}

// QueryDocuments queries the "documents" edge of the Company entity.
func (_m *Company) QueryDocuments() *DocumentQuery {
	return NewCompanyClient(_m.config).QueryDocuments(_m)
}

// QueryMatrices queries the "matrices" edge of the Company entity.
func (_m *Company) QueryMatrices() *MatrixQuery {
	return NewCompanyClient(_m.config).QueryMatrices(_m)
}

// QueryUsageEvents queries the "usage_events" edge of the Company entity.
func (_m *Company) QueryUsageEvents() *UsageEventQuery {
	return NewCompanyClient(_m.config).QueryUsageEvents(_m)
}

// QueryServiceAccounts queries the "service_accounts" edge of the Company entity.
func (_m *Company) QueryServiceAccounts() *ServiceAccountQuery {
	return NewCompanyClient(_m.config).QueryServiceAccounts(_m)
}

// QueryWorkflows queries the "workflows" edge of the Company entity.
func (_m *Company) QueryWorkflows() *WorkflowQuery {
	return NewCompanyClient(_m.config).QueryWorkflows(_m)
}

// Update returns a builder for updating this Company.
// Note that you need to call Company.Unwrap() before calling this method if this Company
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Company) Update() *CompanyUpdateOne {
	return NewCompanyClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Company entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Company) Unwrap() *Company {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Company is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Company) String() string {
	var builder strings.Builder
	builder.WriteString("Company(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("name=")
	builder.WriteString(_m.Name)
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	if v := _m.DeletedAt; v != nil {
		builder.WriteString("deleted_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteByte(')')
	return builder.String()
}

// Companies is a parsable slice of Company.
type Companies []*Company
