// Package workflows implements the workflows.* method grouping of the
// Slack Web API.
package workflows

import (
	"context"

	"github.com/slacktime/slacktime-go/core"
)

// Workflows groups the workflows.* methods.
type Workflows struct {
	client *core.Client
}

// New returns the workflows grouping backed by the given client.
func New(c *core.Client) *Workflows {
	return &Workflows{client: c}
}

// StepCompletedOptions are the optional arguments for StepCompleted.
type StepCompletedOptions struct {
	// Outputs maps output names to values, matching the step's declared
	// outputs.
	Outputs any
}

// StepCompleted indicates that an app's step in a workflow completed
// execution.
// https://api.slack.com/methods/workflows.stepCompleted
func (w *Workflows) StepCompleted(ctx context.Context, workflowStepExecuteID string, opts *StepCompletedOptions) (*core.Envelope, error) {
	p := core.Payload{}
	p.Set("workflow_step_execute_id", workflowStepExecuteID)
	if opts != nil {
		if opts.Outputs != nil {
			if err := p.SetJSON("outputs", opts.Outputs); err != nil {
				return nil, err
			}
		}
	}
	return w.client.Post(ctx, "workflows.stepCompleted", p)
}

// StepFailed indicates that an app's step in a workflow failed to execute.
// https://api.slack.com/methods/workflows.stepFailed
func (w *Workflows) StepFailed(ctx context.Context, errorMessage, workflowStepExecuteID string) (*core.Envelope, error) {
	p := core.Payload{}
	p.Set("error", errorMessage)
	p.Set("workflow_step_execute_id", workflowStepExecuteID)
	return w.client.Post(ctx, "workflows.stepFailed", p)
}

// UpdateStepOptions are the optional arguments for UpdateStep.
type UpdateStepOptions struct {
	Inputs  any
	Outputs any
}

// UpdateStep updates the configuration for a workflow extension step.
// https://api.slack.com/methods/workflows.updateStep
func (w *Workflows) UpdateStep(ctx context.Context, workflowStepEditID string, opts *UpdateStepOptions) (*core.Envelope, error) {
	p := core.Payload{}
	p.Set("workflow_step_edit_id", workflowStepEditID)
	if opts != nil {
		if opts.Inputs != nil {
			if err := p.SetJSON("inputs", opts.Inputs); err != nil {
				return nil, err
			}
		}
		if opts.Outputs != nil {
			if err := p.SetJSON("outputs", opts.Outputs); err != nil {
				return nil, err
			}
		}
	}
	return w.client.Post(ctx, "workflows.updateStep", p)
}
