// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// AgentSessionsColumns holds the columns for the "agent_sessions" table.
	AgentSessionsColumns = []*schema.Column{
		{Name: "agent_session_id", Type: field.TypeString, Unique: true},
		{Name: "basket_id", Type: field.TypeString},
		{Name: "workspace_id", Type: field.TypeString},
		{Name: "agent_kind", Type: field.TypeEnum, Enums: []string{"research", "content", "reporting", "thinking_partner"}},
		{Name: "created_by_session_id", Type: field.TypeString, Nullable: true},
		{Name: "provider_session_id", Type: field.TypeString, Nullable: true},
		{Name: "state", Type: field.TypeJSON, Nullable: true},
		{Name: "session_metadata", Type: field.TypeJSON, Nullable: true},
		{Name: "created_by", Type: field.TypeString, Nullable: true},
		{Name: "last_claimed_by", Type: field.TypeString, Nullable: true},
		{Name: "last_claimed_at", Type: field.TypeTime, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "parent_session_id", Type: field.TypeString, Nullable: true},
	}
	// AgentSessionsTable holds the schema information for the "agent_sessions" table.
	AgentSessionsTable = &schema.Table{
		Name:       "agent_sessions",
		Columns:    AgentSessionsColumns,
		PrimaryKey: []*schema.Column{AgentSessionsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "agent_sessions_agent_sessions_children",
				Columns:    []*schema.Column{AgentSessionsColumns[13]},
				RefColumns: []*schema.Column{AgentSessionsColumns[0]},
				OnDelete:   schema.SetNull,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "agentsession_basket_id_agent_kind",
				Unique:  true,
				Columns: []*schema.Column{AgentSessionsColumns[1], AgentSessionsColumns[3]},
			},
			{
				Name:    "agentsession_workspace_id",
				Unique:  false,
				Columns: []*schema.Column{AgentSessionsColumns[2]},
			},
			{
				Name:    "agentsession_parent_session_id",
				Unique:  false,
				Columns: []*schema.Column{AgentSessionsColumns[13]},
			},
		},
	}
	// AgentSubscriptionsColumns holds the columns for the "agent_subscriptions" table.
	AgentSubscriptionsColumns = []*schema.Column{
		{Name: "agent_subscription_id", Type: field.TypeString, Unique: true},
		{Name: "user_id", Type: field.TypeString},
		{Name: "workspace_id", Type: field.TypeString},
		{Name: "agent_kind", Type: field.TypeEnum, Enums: []string{"research", "content", "reporting", "thinking_partner"}},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"active", "cancelled"}, Default: "active"},
		{Name: "expires_at", Type: field.TypeTime, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// AgentSubscriptionsTable holds the schema information for the "agent_subscriptions" table.
	AgentSubscriptionsTable = &schema.Table{
		Name:       "agent_subscriptions",
		Columns:    AgentSubscriptionsColumns,
		PrimaryKey: []*schema.Column{AgentSubscriptionsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "agentsubscription_user_id_workspace_id_agent_kind_status",
				Unique:  false,
				Columns: []*schema.Column{AgentSubscriptionsColumns[1], AgentSubscriptionsColumns[2], AgentSubscriptionsColumns[3], AgentSubscriptionsColumns[4]},
			},
		},
	}
	// ProjectsColumns holds the columns for the "projects" table.
	ProjectsColumns = []*schema.Column{
		{Name: "project_id", Type: field.TypeString, Unique: true},
		{Name: "workspace_id", Type: field.TypeString},
		{Name: "basket_id", Type: field.TypeString, Unique: true},
		{Name: "name", Type: field.TypeString},
		{Name: "description", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"active", "archived"}, Default: "active"},
		{Name: "promotion_mode", Type: field.TypeEnum, Enums: []string{"manual", "auto"}, Default: "manual"},
		{Name: "auto_promote_types", Type: field.TypeJSON, Nullable: true},
		{Name: "governance_policy", Type: field.TypeJSON, Nullable: true},
		{Name: "created_by", Type: field.TypeString, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// ProjectsTable holds the schema information for the "projects" table.
	ProjectsTable = &schema.Table{
		Name:       "projects",
		Columns:    ProjectsColumns,
		PrimaryKey: []*schema.Column{ProjectsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "project_workspace_id",
				Unique:  false,
				Columns: []*schema.Column{ProjectsColumns[1]},
			},
			{
				Name:    "project_workspace_id_status",
				Unique:  false,
				Columns: []*schema.Column{ProjectsColumns[1], ProjectsColumns[5]},
			},
			{
				Name:    "project_basket_id",
				Unique:  true,
				Columns: []*schema.Column{ProjectsColumns[2]},
			},
		},
	}
	// WorkEventsColumns holds the columns for the "work_events" table.
	WorkEventsColumns = []*schema.Column{
		{Name: "work_event_id", Type: field.TypeInt64, Increment: true},
		{Name: "ticket_id", Type: field.TypeString},
		{Name: "event_type", Type: field.TypeString},
		{Name: "step_name", Type: field.TypeString, Nullable: true},
		{Name: "status", Type: field.TypeString, Nullable: true},
		{Name: "payload", Type: field.TypeJSON, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
	}
	// WorkEventsTable holds the schema information for the "work_events" table.
	WorkEventsTable = &schema.Table{
		Name:       "work_events",
		Columns:    WorkEventsColumns,
		PrimaryKey: []*schema.Column{WorkEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "workevent_ticket_id_work_event_id",
				Unique:  false,
				Columns: []*schema.Column{WorkEventsColumns[1], WorkEventsColumns[0]},
			},
			{
				Name:    "workevent_created_at",
				Unique:  false,
				Columns: []*schema.Column{WorkEventsColumns[6]},
			},
		},
	}
	// WorkRequestsColumns holds the columns for the "work_requests" table.
	WorkRequestsColumns = []*schema.Column{
		{Name: "work_request_id", Type: field.TypeString, Unique: true},
		{Name: "user_id", Type: field.TypeString},
		{Name: "workspace_id", Type: field.TypeString},
		{Name: "basket_id", Type: field.TypeString},
		{Name: "agent_kind", Type: field.TypeEnum, Enums: []string{"research", "content", "reporting", "thinking_partner"}},
		{Name: "work_mode", Type: field.TypeString},
		{Name: "payload", Type: field.TypeJSON, Nullable: true},
		{Name: "is_trial", Type: field.TypeBool, Default: false},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"pending", "running", "completed", "failed"}, Default: "pending"},
		{Name: "result_summary", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "error_message", Type: field.TypeString, Nullable: true},
		{Name: "priority", Type: field.TypeInt, Default: 0},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// WorkRequestsTable holds the schema information for the "work_requests" table.
	WorkRequestsTable = &schema.Table{
		Name:       "work_requests",
		Columns:    WorkRequestsColumns,
		PrimaryKey: []*schema.Column{WorkRequestsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "workrequest_user_id_workspace_id_is_trial_status",
				Unique:  false,
				Columns: []*schema.Column{WorkRequestsColumns[1], WorkRequestsColumns[2], WorkRequestsColumns[7], WorkRequestsColumns[8]},
			},
			{
				Name:    "workrequest_basket_id",
				Unique:  false,
				Columns: []*schema.Column{WorkRequestsColumns[3]},
			},
			{
				Name:    "workrequest_status_created_at",
				Unique:  false,
				Columns: []*schema.Column{WorkRequestsColumns[8], WorkRequestsColumns[12]},
			},
		},
	}
	// WorkTicketsColumns holds the columns for the "work_tickets" table.
	WorkTicketsColumns = []*schema.Column{
		{Name: "work_ticket_id", Type: field.TypeString, Unique: true},
		{Name: "agent_session_id", Type: field.TypeString},
		{Name: "basket_id", Type: field.TypeString},
		{Name: "workspace_id", Type: field.TypeString},
		{Name: "agent_kind", Type: field.TypeEnum, Enums: []string{"research", "content", "reporting", "thinking_partner"}},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"pending", "running", "completed", "pending_review", "failed"}, Default: "pending"},
		{Name: "priority", Type: field.TypeInt, Default: 0},
		{Name: "started_at", Type: field.TypeTime, Nullable: true},
		{Name: "ended_at", Type: field.TypeTime, Nullable: true},
		{Name: "ticket_metadata", Type: field.TypeJSON, Nullable: true},
		{Name: "pod_id", Type: field.TypeString, Nullable: true},
		{Name: "claimed_at", Type: field.TypeTime, Nullable: true},
		{Name: "last_heartbeat_at", Type: field.TypeTime, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "work_request_id", Type: field.TypeString, Unique: true},
	}
	// WorkTicketsTable holds the schema information for the "work_tickets" table.
	WorkTicketsTable = &schema.Table{
		Name:       "work_tickets",
		Columns:    WorkTicketsColumns,
		PrimaryKey: []*schema.Column{WorkTicketsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "work_tickets_work_requests_ticket",
				Columns:    []*schema.Column{WorkTicketsColumns[15]},
				RefColumns: []*schema.Column{WorkRequestsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "workticket_status_priority_created_at",
				Unique:  false,
				Columns: []*schema.Column{WorkTicketsColumns[5], WorkTicketsColumns[6], WorkTicketsColumns[13]},
			},
			{
				Name:    "workticket_basket_id",
				Unique:  false,
				Columns: []*schema.Column{WorkTicketsColumns[2]},
			},
			{
				Name:    "workticket_agent_session_id_status",
				Unique:  false,
				Columns: []*schema.Column{WorkTicketsColumns[1], WorkTicketsColumns[5]},
			},
			{
				Name:    "workticket_status_last_heartbeat_at",
				Unique:  false,
				Columns: []*schema.Column{WorkTicketsColumns[5], WorkTicketsColumns[12]},
			},
			{
				Name:    "workticket_work_request_id",
				Unique:  true,
				Columns: []*schema.Column{WorkTicketsColumns[15]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		AgentSessionsTable,
		AgentSubscriptionsTable,
		ProjectsTable,
		WorkEventsTable,
		WorkRequestsTable,
		WorkTicketsTable,
	}
)

func init() {
	AgentSessionsTable.ForeignKeys[0].RefTable = AgentSessionsTable
	WorkTicketsTable.ForeignKeys[0].RefTable = WorkRequestsTable
}
