// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/cobbleworks/foundry/ent/agentsession"
	"github.com/cobbleworks/foundry/ent/agentsubscription"
	"github.com/cobbleworks/foundry/ent/project"
	"github.com/cobbleworks/foundry/ent/schema"
	"github.com/cobbleworks/foundry/ent/workevent"
	"github.com/cobbleworks/foundry/ent/workrequest"
	"github.com/cobbleworks/foundry/ent/workticket"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	agentsessionFields := schema.AgentSession{}.Fields()
	_ = agentsessionFields
	// agentsessionDescCreatedAt is the schema descriptor for created_at field.
	agentsessionDescCreatedAt := agentsessionFields[12].Descriptor()
	// agentsession.DefaultCreatedAt holds the default value on creation for the created_at field.
	agentsession.DefaultCreatedAt = agentsessionDescCreatedAt.Default.(func() time.Time)
	// agentsessionDescUpdatedAt is the schema descriptor for updated_at field.
	agentsessionDescUpdatedAt := agentsessionFields[13].Descriptor()
	// agentsession.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	agentsession.DefaultUpdatedAt = agentsessionDescUpdatedAt.Default.(func() time.Time)
	// agentsession.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	agentsession.UpdateDefaultUpdatedAt = agentsessionDescUpdatedAt.UpdateDefault.(func() time.Time)
	agentsubscriptionFields := schema.AgentSubscription{}.Fields()
	_ = agentsubscriptionFields
	// agentsubscriptionDescCreatedAt is the schema descriptor for created_at field.
	agentsubscriptionDescCreatedAt := agentsubscriptionFields[6].Descriptor()
	// agentsubscription.DefaultCreatedAt holds the default value on creation for the created_at field.
	agentsubscription.DefaultCreatedAt = agentsubscriptionDescCreatedAt.Default.(func() time.Time)
	// agentsubscriptionDescUpdatedAt is the schema descriptor for updated_at field.
	agentsubscriptionDescUpdatedAt := agentsubscriptionFields[7].Descriptor()
	// agentsubscription.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	agentsubscription.DefaultUpdatedAt = agentsubscriptionDescUpdatedAt.Default.(func() time.Time)
	// agentsubscription.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	agentsubscription.UpdateDefaultUpdatedAt = agentsubscriptionDescUpdatedAt.UpdateDefault.(func() time.Time)
	projectFields := schema.Project{}.Fields()
	_ = projectFields
	// projectDescCreatedAt is the schema descriptor for created_at field.
	projectDescCreatedAt := projectFields[10].Descriptor()
	// project.DefaultCreatedAt holds the default value on creation for the created_at field.
	project.DefaultCreatedAt = projectDescCreatedAt.Default.(func() time.Time)
	// projectDescUpdatedAt is the schema descriptor for updated_at field.
	projectDescUpdatedAt := projectFields[11].Descriptor()
	// project.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	project.DefaultUpdatedAt = projectDescUpdatedAt.Default.(func() time.Time)
	// project.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	project.UpdateDefaultUpdatedAt = projectDescUpdatedAt.UpdateDefault.(func() time.Time)
	workeventFields := schema.WorkEvent{}.Fields()
	_ = workeventFields
	// workeventDescCreatedAt is the schema descriptor for created_at field.
	workeventDescCreatedAt := workeventFields[6].Descriptor()
	// workevent.DefaultCreatedAt holds the default value on creation for the created_at field.
	workevent.DefaultCreatedAt = workeventDescCreatedAt.Default.(func() time.Time)
	workrequestFields := schema.WorkRequest{}.Fields()
	_ = workrequestFields
	// workrequestDescIsTrial is the schema descriptor for is_trial field.
	workrequestDescIsTrial := workrequestFields[7].Descriptor()
	// workrequest.DefaultIsTrial holds the default value on creation for the is_trial field.
	workrequest.DefaultIsTrial = workrequestDescIsTrial.Default.(bool)
	// workrequestDescPriority is the schema descriptor for priority field.
	workrequestDescPriority := workrequestFields[11].Descriptor()
	// workrequest.DefaultPriority holds the default value on creation for the priority field.
	workrequest.DefaultPriority = workrequestDescPriority.Default.(int)
	// workrequestDescCreatedAt is the schema descriptor for created_at field.
	workrequestDescCreatedAt := workrequestFields[12].Descriptor()
	// workrequest.DefaultCreatedAt holds the default value on creation for the created_at field.
	workrequest.DefaultCreatedAt = workrequestDescCreatedAt.Default.(func() time.Time)
	// workrequestDescUpdatedAt is the schema descriptor for updated_at field.
	workrequestDescUpdatedAt := workrequestFields[13].Descriptor()
	// workrequest.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	workrequest.DefaultUpdatedAt = workrequestDescUpdatedAt.Default.(func() time.Time)
	// workrequest.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	workrequest.UpdateDefaultUpdatedAt = workrequestDescUpdatedAt.UpdateDefault.(func() time.Time)
	workticketFields := schema.WorkTicket{}.Fields()
	_ = workticketFields
	// workticketDescPriority is the schema descriptor for priority field.
	workticketDescPriority := workticketFields[7].Descriptor()
	// workticket.DefaultPriority holds the default value on creation for the priority field.
	workticket.DefaultPriority = workticketDescPriority.Default.(int)
	// workticketDescCreatedAt is the schema descriptor for created_at field.
	workticketDescCreatedAt := workticketFields[14].Descriptor()
	// workticket.DefaultCreatedAt holds the default value on creation for the created_at field.
	workticket.DefaultCreatedAt = workticketDescCreatedAt.Default.(func() time.Time)
	// workticketDescUpdatedAt is the schema descriptor for updated_at field.
	workticketDescUpdatedAt := workticketFields[15].Descriptor()
	// workticket.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	workticket.DefaultUpdatedAt = workticketDescUpdatedAt.Default.(func() time.Time)
	// workticket.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	workticket.UpdateDefaultUpdatedAt = workticketDescUpdatedAt.UpdateDefault.(func() time.Time)
}
