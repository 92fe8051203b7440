// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// AnswersColumns holds the columns for the "answers" table.
	AnswersColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "answer_order", Type: field.TypeInt},
		{Name: "answer_type", Type: field.TypeEnum, Enums: []string{"text", "date", "currency", "select"}},
		{Name: "answer_data", Type: field.TypeJSON},
		{Name: "confidence", Type: field.TypeFloat64},
		{Name: "answer_set_id", Type: field.TypeInt},
	}
	// AnswersTable holds the schema information for the "answers" table.
	AnswersTable = &schema.Table{
		Name:       "answers",
		Columns:    AnswersColumns,
		PrimaryKey: []*schema.Column{AnswersColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "answers_answer_sets_answers",
				Columns:    []*schema.Column{AnswersColumns[5]},
				RefColumns: []*schema.Column{AnswerSetsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "answer_answer_set_id_answer_order",
				Unique:  true,
				Columns: []*schema.Column{AnswersColumns[5], AnswersColumns[1]},
			},
		},
	}
	// AnswerSetsColumns holds the columns for the "answer_sets" table.
	AnswerSetsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "answer_found", Type: field.TypeBool, Default: false},
		{Name: "question_type_id", Type: field.TypeInt, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "cell_id", Type: field.TypeInt},
	}
	// AnswerSetsTable holds the schema information for the "answer_sets" table.
	AnswerSetsTable = &schema.Table{
		Name:       "answer_sets",
		Columns:    AnswerSetsColumns,
		PrimaryKey: []*schema.Column{AnswerSetsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "answer_sets_matrix_cells_answer_sets",
				Columns:    []*schema.Column{AnswerSetsColumns[4]},
				RefColumns: []*schema.Column{MatrixCellsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "answerset_cell_id_created_at",
				Unique:  false,
				Columns: []*schema.Column{AnswerSetsColumns[4], AnswerSetsColumns[3]},
			},
		},
	}
	// CellEntityRefsColumns holds the columns for the "cell_entity_refs" table.
	CellEntityRefsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "role", Type: field.TypeString},
		{Name: "entity_id", Type: field.TypeInt},
		{Name: "cell_id", Type: field.TypeInt},
	}
	// CellEntityRefsTable holds the schema information for the "cell_entity_refs" table.
	CellEntityRefsTable = &schema.Table{
		Name:       "cell_entity_refs",
		Columns:    CellEntityRefsColumns,
		PrimaryKey: []*schema.Column{CellEntityRefsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "cell_entity_refs_matrix_cells_entity_refs",
				Columns:    []*schema.Column{CellEntityRefsColumns[3]},
				RefColumns: []*schema.Column{MatrixCellsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "cellentityref_cell_id_role_entity_id",
				Unique:  true,
				Columns: []*schema.Column{CellEntityRefsColumns[3], CellEntityRefsColumns[1], CellEntityRefsColumns[2]},
			},
		},
	}
	// ChunksColumns holds the columns for the "chunks" table.
	ChunksColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "chunk_id", Type: field.TypeString},
		{Name: "document_id", Type: field.TypeInt},
		{Name: "company_id", Type: field.TypeInt},
		{Name: "s3_key", Type: field.TypeString},
		{Name: "chunk_metadata", Type: field.TypeJSON, Nullable: true},
		{Name: "chunk_order", Type: field.TypeInt},
		{Name: "chunk_set_id", Type: field.TypeInt},
	}
	// ChunksTable holds the schema information for the "chunks" table.
	ChunksTable = &schema.Table{
		Name:       "chunks",
		Columns:    ChunksColumns,
		PrimaryKey: []*schema.Column{ChunksColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "chunks_chunk_sets_chunks",
				Columns:    []*schema.Column{ChunksColumns[7]},
				RefColumns: []*schema.Column{ChunkSetsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "chunk_chunk_set_id_chunk_order",
				Unique:  true,
				Columns: []*schema.Column{ChunksColumns[7], ChunksColumns[6]},
			},
			{
				Name:    "chunk_document_id",
				Unique:  false,
				Columns: []*schema.Column{ChunksColumns[2]},
			},
			{
				Name:    "chunk_company_id",
				Unique:  false,
				Columns: []*schema.Column{ChunksColumns[3]},
			},
		},
	}
	// ChunkSetsColumns holds the columns for the "chunk_sets" table.
	ChunkSetsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "company_id", Type: field.TypeInt},
		{Name: "chunking_strategy", Type: field.TypeString},
		{Name: "total_chunks", Type: field.TypeInt, Default: 0},
		{Name: "s3_prefix", Type: field.TypeString},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "document_id", Type: field.TypeInt},
	}
	// ChunkSetsTable holds the schema information for the "chunk_sets" table.
	ChunkSetsTable = &schema.Table{
		Name:       "chunk_sets",
		Columns:    ChunkSetsColumns,
		PrimaryKey: []*schema.Column{ChunkSetsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "chunk_sets_documents_chunk_sets",
				Columns:    []*schema.Column{ChunkSetsColumns[6]},
				RefColumns: []*schema.Column{DocumentsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "chunkset_company_id",
				Unique:  false,
				Columns: []*schema.Column{ChunkSetsColumns[1]},
			},
			{
				Name:    "chunkset_document_id_created_at",
				Unique:  false,
				Columns: []*schema.Column{ChunkSetsColumns[6], ChunkSetsColumns[5]},
			},
		},
	}
	// CitationsColumns holds the columns for the "citations" table.
	CitationsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "document_id", Type: field.TypeInt},
		{Name: "quote_text", Type: field.TypeString, Size: 2147483647},
		{Name: "citation_order", Type: field.TypeInt},
		{Name: "grounding_score", Type: field.TypeFloat64, Nullable: true},
		{Name: "answer_id", Type: field.TypeInt},
	}
	// CitationsTable holds the schema information for the "citations" table.
	CitationsTable = &schema.Table{
		Name:       "citations",
		Columns:    CitationsColumns,
		PrimaryKey: []*schema.Column{CitationsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "citations_answers_citations",
				Columns:    []*schema.Column{CitationsColumns[5]},
				RefColumns: []*schema.Column{AnswersColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "citation_answer_id_citation_order",
				Unique:  false,
				Columns: []*schema.Column{CitationsColumns[5], CitationsColumns[3]},
			},
		},
	}
	// CompaniesColumns holds the columns for the "companies" table.
	CompaniesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "name", Type: field.TypeString},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "deleted_at", Type: field.TypeTime, Nullable: true},
	}
	// CompaniesTable holds the schema information for the "companies" table.
	CompaniesTable = &schema.Table{
		Name:       "companies",
		Columns:    CompaniesColumns,
		PrimaryKey: []*schema.Column{CompaniesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "company_deleted_at",
				Unique:  false,
				Columns: []*schema.Column{CompaniesColumns[3]},
				Annotation: &entsql.IndexAnnotation{
					Where: "deleted_at IS NOT NULL",
				},
			},
		},
	}
	// DocumentsColumns holds the columns for the "documents" table.
	DocumentsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "filename", Type: field.TypeString},
		{Name: "storage_key", Type: field.TypeString},
		{Name: "checksum", Type: field.TypeString},
		{Name: "extraction_status", Type: field.TypeEnum, Enums: []string{"pending", "processing", "completed", "failed"}, Default: "pending"},
		{Name: "extracted_content_path", Type: field.TypeString, Nullable: true},
		{Name: "extracted_char_count", Type: field.TypeInt, Default: 0},
		{Name: "current_chunk_set_id", Type: field.TypeInt, Nullable: true},
		{Name: "uploaded_at", Type: field.TypeTime},
		{Name: "extracted_at", Type: field.TypeTime, Nullable: true},
		{Name: "deleted_at", Type: field.TypeTime, Nullable: true},
		{Name: "company_id", Type: field.TypeInt},
	}
	// DocumentsTable holds the schema information for the "documents" table.
	DocumentsTable = &schema.Table{
		Name:       "documents",
		Columns:    DocumentsColumns,
		PrimaryKey: []*schema.Column{DocumentsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "documents_companies_documents",
				Columns:    []*schema.Column{DocumentsColumns[11]},
				RefColumns: []*schema.Column{CompaniesColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "document_company_id_checksum",
				Unique:  true,
				Columns: []*schema.Column{DocumentsColumns[11], DocumentsColumns[3]},
				Annotation: &entsql.IndexAnnotation{
					Where: "deleted_at IS NULL",
				},
			},
			{
				Name:    "document_extraction_status",
				Unique:  false,
				Columns: []*schema.Column{DocumentsColumns[4]},
			},
		},
	}
	// EntitySetsColumns holds the columns for the "entity_sets" table.
	EntitySetsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "name", Type: field.TypeString},
		{Name: "entity_type", Type: field.TypeEnum, Enums: []string{"document", "question"}},
		{Name: "matrix_id", Type: field.TypeInt},
	}
	// EntitySetsTable holds the schema information for the "entity_sets" table.
	EntitySetsTable = &schema.Table{
		Name:       "entity_sets",
		Columns:    EntitySetsColumns,
		PrimaryKey: []*schema.Column{EntitySetsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "entity_sets_matrixes_entity_sets",
				Columns:    []*schema.Column{EntitySetsColumns[3]},
				RefColumns: []*schema.Column{MatrixesColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "entityset_matrix_id",
				Unique:  false,
				Columns: []*schema.Column{EntitySetsColumns[3]},
			},
		},
	}
	// EntitySetMembersColumns holds the columns for the "entity_set_members" table.
	EntitySetMembersColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "entity_id", Type: field.TypeInt},
		{Name: "entity_type", Type: field.TypeEnum, Enums: []string{"document", "question"}},
		{Name: "member_order", Type: field.TypeInt},
		{Name: "label", Type: field.TypeString, Nullable: true},
		{Name: "entity_set_id", Type: field.TypeInt},
	}
	// EntitySetMembersTable holds the schema information for the "entity_set_members" table.
	EntitySetMembersTable = &schema.Table{
		Name:       "entity_set_members",
		Columns:    EntitySetMembersColumns,
		PrimaryKey: []*schema.Column{EntitySetMembersColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "entity_set_members_entity_sets_members",
				Columns:    []*schema.Column{EntitySetMembersColumns[5]},
				RefColumns: []*schema.Column{EntitySetsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "entitysetmember_entity_set_id_member_order",
				Unique:  false,
				Columns: []*schema.Column{EntitySetMembersColumns[5], EntitySetMembersColumns[3]},
			},
			{
				Name:    "entitysetmember_entity_set_id_entity_id",
				Unique:  true,
				Columns: []*schema.Column{EntitySetMembersColumns[5], EntitySetMembersColumns[1]},
			},
		},
	}
	// ExecutionFilesColumns holds the columns for the "execution_files" table.
	ExecutionFilesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "file_name", Type: field.TypeString},
		{Name: "storage_key", Type: field.TypeString},
		{Name: "file_kind", Type: field.TypeEnum, Enums: []string{"output", "scratch"}, Default: "output"},
		{Name: "size_bytes", Type: field.TypeInt64, Default: 0},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "execution_id", Type: field.TypeInt},
	}
	// ExecutionFilesTable holds the schema information for the "execution_files" table.
	ExecutionFilesTable = &schema.Table{
		Name:       "execution_files",
		Columns:    ExecutionFilesColumns,
		PrimaryKey: []*schema.Column{ExecutionFilesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "execution_files_workflow_executions_files",
				Columns:    []*schema.Column{ExecutionFilesColumns[6]},
				RefColumns: []*schema.Column{WorkflowExecutionsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "executionfile_execution_id_file_name",
				Unique:  true,
				Columns: []*schema.Column{ExecutionFilesColumns[6], ExecutionFilesColumns[1]},
			},
		},
	}
	// MatrixesColumns holds the columns for the "matrixes" table.
	MatrixesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "name", Type: field.TypeString},
		{Name: "workspace_id", Type: field.TypeString},
		{Name: "matrix_type", Type: field.TypeEnum, Enums: []string{"standard", "cross_correlation", "generic_correlation", "synopsis"}, Default: "standard"},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "deleted_at", Type: field.TypeTime, Nullable: true},
		{Name: "company_id", Type: field.TypeInt},
	}
	// MatrixesTable holds the schema information for the "matrixes" table.
	MatrixesTable = &schema.Table{
		Name:       "matrixes",
		Columns:    MatrixesColumns,
		PrimaryKey: []*schema.Column{MatrixesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "matrixes_companies_matrices",
				Columns:    []*schema.Column{MatrixesColumns[6]},
				RefColumns: []*schema.Column{CompaniesColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "matrix_company_id_workspace_id",
				Unique:  false,
				Columns: []*schema.Column{MatrixesColumns[6], MatrixesColumns[2]},
			},
		},
	}
	// MatrixCellsColumns holds the columns for the "matrix_cells" table.
	MatrixCellsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "company_id", Type: field.TypeInt},
		{Name: "cell_type", Type: field.TypeString},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"pending", "processing", "completed", "failed"}, Default: "pending"},
		{Name: "current_answer_set_id", Type: field.TypeInt, Nullable: true},
		{Name: "cell_signature", Type: field.TypeString},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "deleted_at", Type: field.TypeTime, Nullable: true},
		{Name: "matrix_id", Type: field.TypeInt},
	}
	// MatrixCellsTable holds the schema information for the "matrix_cells" table.
	MatrixCellsTable = &schema.Table{
		Name:       "matrix_cells",
		Columns:    MatrixCellsColumns,
		PrimaryKey: []*schema.Column{MatrixCellsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "matrix_cells_matrixes_cells",
				Columns:    []*schema.Column{MatrixCellsColumns[8]},
				RefColumns: []*schema.Column{MatrixesColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "matrixcell_matrix_id_cell_signature",
				Unique:  true,
				Columns: []*schema.Column{MatrixCellsColumns[8], MatrixCellsColumns[5]},
				Annotation: &entsql.IndexAnnotation{
					Where: "deleted_at IS NULL",
				},
			},
			{
				Name:    "matrixcell_status",
				Unique:  false,
				Columns: []*schema.Column{MatrixCellsColumns[3]},
			},
			{
				Name:    "matrixcell_company_id_status",
				Unique:  false,
				Columns: []*schema.Column{MatrixCellsColumns[1], MatrixCellsColumns[3]},
			},
		},
	}
	// QaJobsColumns holds the columns for the "qa_jobs" table.
	QaJobsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "company_id", Type: field.TypeInt},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"queued", "processing", "completed", "failed"}, Default: "queued"},
		{Name: "error_message", Type: field.TypeString, Nullable: true},
		{Name: "pod_id", Type: field.TypeString, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "started_at", Type: field.TypeTime, Nullable: true},
		{Name: "completed_at", Type: field.TypeTime, Nullable: true},
		{Name: "cell_id", Type: field.TypeInt},
	}
	// QaJobsTable holds the schema information for the "qa_jobs" table.
	QaJobsTable = &schema.Table{
		Name:       "qa_jobs",
		Columns:    QaJobsColumns,
		PrimaryKey: []*schema.Column{QaJobsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "qa_jobs_matrix_cells_qa_jobs",
				Columns:    []*schema.Column{QaJobsColumns[8]},
				RefColumns: []*schema.Column{MatrixCellsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "qajob_status_created_at",
				Unique:  false,
				Columns: []*schema.Column{QaJobsColumns[2], QaJobsColumns[5]},
			},
			{
				Name:    "qajob_company_id_status",
				Unique:  false,
				Columns: []*schema.Column{QaJobsColumns[1], QaJobsColumns[2]},
			},
			{
				Name:    "qajob_pod_id",
				Unique:  false,
				Columns: []*schema.Column{QaJobsColumns[4]},
			},
		},
	}
	// ServiceAccountsColumns holds the columns for the "service_accounts" table.
	ServiceAccountsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "execution_id", Type: field.TypeString},
		{Name: "api_key_hash", Type: field.TypeString},
		{Name: "is_active", Type: field.TypeBool, Default: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "deleted_at", Type: field.TypeTime, Nullable: true},
		{Name: "company_id", Type: field.TypeInt},
	}
	// ServiceAccountsTable holds the schema information for the "service_accounts" table.
	ServiceAccountsTable = &schema.Table{
		Name:       "service_accounts",
		Columns:    ServiceAccountsColumns,
		PrimaryKey: []*schema.Column{ServiceAccountsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "service_accounts_companies_service_accounts",
				Columns:    []*schema.Column{ServiceAccountsColumns[6]},
				RefColumns: []*schema.Column{CompaniesColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "serviceaccount_api_key_hash",
				Unique:  false,
				Columns: []*schema.Column{ServiceAccountsColumns[2]},
			},
			{
				Name:    "serviceaccount_company_id_is_active",
				Unique:  false,
				Columns: []*schema.Column{ServiceAccountsColumns[6], ServiceAccountsColumns[3]},
			},
			{
				Name:    "serviceaccount_execution_id",
				Unique:  false,
				Columns: []*schema.Column{ServiceAccountsColumns[1]},
			},
		},
	}
	// SubscriptionsColumns holds the columns for the "subscriptions" table.
	SubscriptionsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "tier", Type: field.TypeEnum, Enums: []string{"free", "starter", "professional", "business", "enterprise"}, Default: "free"},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"active", "past_due", "suspended", "cancelled"}, Default: "active"},
		{Name: "current_period_start", Type: field.TypeTime},
		{Name: "current_period_end", Type: field.TypeTime},
		{Name: "external_ref", Type: field.TypeString, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "deleted_at", Type: field.TypeTime, Nullable: true},
		{Name: "company_id", Type: field.TypeInt, Unique: true},
	}
	// SubscriptionsTable holds the schema information for the "subscriptions" table.
	SubscriptionsTable = &schema.Table{
		Name:       "subscriptions",
		Columns:    SubscriptionsColumns,
		PrimaryKey: []*schema.Column{SubscriptionsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "subscriptions_companies_subscription",
				Columns:    []*schema.Column{SubscriptionsColumns[8]},
				RefColumns: []*schema.Column{CompaniesColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "subscription_company_id",
				Unique:  true,
				Columns: []*schema.Column{SubscriptionsColumns[8]},
				Annotation: &entsql.IndexAnnotation{
					Where: "deleted_at IS NULL",
				},
			},
			{
				Name:    "subscription_status",
				Unique:  false,
				Columns: []*schema.Column{SubscriptionsColumns[2]},
			},
		},
	}
	// UsageEventsColumns holds the columns for the "usage_events" table.
	UsageEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "user_id", Type: field.TypeInt, Nullable: true},
		{Name: "event_type", Type: field.TypeEnum, Enums: []string{"cell_operation", "agentic_qa", "workflow", "storage_upload", "agentic_chunking"}},
		{Name: "quantity", Type: field.TypeInt, Default: 1},
		{Name: "file_size_bytes", Type: field.TypeInt64, Nullable: true},
		{Name: "metadata", Type: field.TypeJSON, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "company_id", Type: field.TypeInt},
	}
	// UsageEventsTable holds the schema information for the "usage_events" table.
	UsageEventsTable = &schema.Table{
		Name:       "usage_events",
		Columns:    UsageEventsColumns,
		PrimaryKey: []*schema.Column{UsageEventsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "usage_events_companies_usage_events",
				Columns:    []*schema.Column{UsageEventsColumns[7]},
				RefColumns: []*schema.Column{CompaniesColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "usageevent_company_id_event_type_created_at",
				Unique:  false,
				Columns: []*schema.Column{UsageEventsColumns[7], UsageEventsColumns[2], UsageEventsColumns[6]},
			},
		},
	}
	// WorkflowsColumns holds the columns for the "workflows" table.
	WorkflowsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "name", Type: field.TypeString},
		{Name: "description", Type: field.TypeString, Nullable: true},
		{Name: "image_name", Type: field.TypeString},
		{Name: "image_tag", Type: field.TypeString, Default: "latest"},
		{Name: "job_config", Type: field.TypeJSON, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "deleted_at", Type: field.TypeTime, Nullable: true},
		{Name: "company_id", Type: field.TypeInt},
	}
	// WorkflowsTable holds the schema information for the "workflows" table.
	WorkflowsTable = &schema.Table{
		Name:       "workflows",
		Columns:    WorkflowsColumns,
		PrimaryKey: []*schema.Column{WorkflowsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "workflows_companies_workflows",
				Columns:    []*schema.Column{WorkflowsColumns[8]},
				RefColumns: []*schema.Column{CompaniesColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "workflow_company_id",
				Unique:  false,
				Columns: []*schema.Column{WorkflowsColumns[8]},
			},
		},
	}
	// WorkflowExecutionsColumns holds the columns for the "workflow_executions" table.
	WorkflowExecutionsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "company_id", Type: field.TypeInt},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"pending", "running", "completed", "failed"}, Default: "pending"},
		{Name: "error_message", Type: field.TypeString, Nullable: true},
		{Name: "cost", Type: field.TypeFloat64, Nullable: true},
		{Name: "duration_ms", Type: field.TypeInt64, Nullable: true},
		{Name: "manifest_key", Type: field.TypeString, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "started_at", Type: field.TypeTime, Nullable: true},
		{Name: "completed_at", Type: field.TypeTime, Nullable: true},
		{Name: "deleted_at", Type: field.TypeTime, Nullable: true},
		{Name: "workflow_id", Type: field.TypeInt},
	}
	// WorkflowExecutionsTable holds the schema information for the "workflow_executions" table.
	WorkflowExecutionsTable = &schema.Table{
		Name:       "workflow_executions",
		Columns:    WorkflowExecutionsColumns,
		PrimaryKey: []*schema.Column{WorkflowExecutionsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "workflow_executions_workflows_executions",
				Columns:    []*schema.Column{WorkflowExecutionsColumns[11]},
				RefColumns: []*schema.Column{WorkflowsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "workflowexecution_workflow_id_created_at",
				Unique:  false,
				Columns: []*schema.Column{WorkflowExecutionsColumns[11], WorkflowExecutionsColumns[7]},
			},
			{
				Name:    "workflowexecution_company_id_status",
				Unique:  false,
				Columns: []*schema.Column{WorkflowExecutionsColumns[1], WorkflowExecutionsColumns[2]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		AnswersTable,
		AnswerSetsTable,
		CellEntityRefsTable,
		ChunksTable,
		ChunkSetsTable,
		CitationsTable,
		CompaniesTable,
		DocumentsTable,
		EntitySetsTable,
		EntitySetMembersTable,
		ExecutionFilesTable,
		MatrixesTable,
		MatrixCellsTable,
		QaJobsTable,
		ServiceAccountsTable,
		SubscriptionsTable,
		UsageEventsTable,
		WorkflowsTable,
		WorkflowExecutionsTable,
	}
)

func init() {
	AnswersTable.ForeignKeys[0].RefTable = AnswerSetsTable
	AnswerSetsTable.ForeignKeys[0].RefTable = MatrixCellsTable
	CellEntityRefsTable.ForeignKeys[0].RefTable = MatrixCellsTable
	ChunksTable.ForeignKeys[0].RefTable = ChunkSetsTable
	ChunkSetsTable.ForeignKeys[0].RefTable = DocumentsTable
	CitationsTable.ForeignKeys[0].RefTable = AnswersTable
	DocumentsTable.ForeignKeys[0].RefTable = CompaniesTable
	EntitySetsTable.ForeignKeys[0].RefTable = MatrixesTable
	EntitySetMembersTable.ForeignKeys[0].RefTable = EntitySetsTable
	ExecutionFilesTable.ForeignKeys[0].RefTable = WorkflowExecutionsTable
	MatrixesTable.ForeignKeys[0].RefTable = CompaniesTable
	MatrixCellsTable.ForeignKeys[0].RefTable = MatrixesTable
	QaJobsTable.ForeignKeys[0].RefTable = MatrixCellsTable
	ServiceAccountsTable.ForeignKeys[0].RefTable = CompaniesTable
	SubscriptionsTable.ForeignKeys[0].RefTable = CompaniesTable
	UsageEventsTable.ForeignKeys[0].RefTable = CompaniesTable
	WorkflowsTable.ForeignKeys[0].RefTable = CompaniesTable
	WorkflowExecutionsTable.ForeignKeys[0].RefTable = WorkflowsTable
}
