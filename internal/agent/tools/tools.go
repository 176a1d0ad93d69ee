// Package tools defines the care consultation tool catalog: the schemas
// advertised to the chat model and the handlers that run when it calls them.
package tools

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/cloudwego/eino/schema"
	"github.com/yonghwan1106/ai-carebridge/internal/agent/model"
	"github.com/yonghwan1106/ai-carebridge/internal/core/errx"
	"github.com/yonghwan1106/ai-carebridge/internal/gateway/publicdata"
	"github.com/yonghwan1106/ai-carebridge/internal/gateway/welfare"
)

// overridable in tests
var timeNow = time.Now

// Handler executes one tool call. Handlers read the current care state but
// never mutate it directly; changes travel back as a patch in the outcome.
type Handler func(ctx context.Context, input json.RawMessage, state *model.CareState) (*model.ToolOutcome, error)

type Tool struct {
	Info    *schema.ToolInfo
	Handler Handler
}

// Registry holds every tool in catalog order.
type Registry struct {
	publicData *publicdata.Client
	welfare    *welfare.Client
	tools      map[string]Tool
	order      []string
}

func NewRegistry(publicData *publicdata.Client, welfareClient *welfare.Client) *Registry {
	r := &Registry{
		publicData: publicData,
		welfare:    welfareClient,
		tools:      make(map[string]Tool),
	}

	r.register(diagnoseCareLevelInfo(), r.handleDiagnoseCareLevel)
	r.register(applyLongTermCareInfo(), r.handleApplyLongTermCare)
	r.register(searchWelfareBenefitsInfo(), r.handleSearchWelfareBenefits)
	r.register(searchCareFacilitiesInfo(), r.handleSearchCareFacilities)
	r.register(getFacilityDetailInfo(), r.handleGetFacilityDetail)
	r.register(scheduleVisitSurveyInfo(), r.handleScheduleVisitSurvey)
	r.register(registerEmergencyCareInfo(), r.handleRegisterEmergencyCare)
	r.register(shareFamilyCalendarInfo(), r.handleShareFamilyCalendar)
	r.register(getGovernmentDocsInfo(), r.handleGetGovernmentDocs)
	r.register(summarizeProgressInfo(), r.handleSummarizeProgress)

	return r
}

func (r *Registry) register(info *schema.ToolInfo, handler Handler) {
	r.tools[info.Name] = Tool{Info: info, Handler: handler}
	r.order = append(r.order, info.Name)
}

// Specs returns the tool schemas in catalog order, for binding to the model.
func (r *Registry) Specs() []*schema.ToolInfo {
	specs := make([]*schema.ToolInfo, 0, len(r.order))
	for _, name := range r.order {
		specs = append(specs, r.tools[name].Info)
	}
	return specs
}

// Dispatch runs the named tool against the given arguments and state.
func (r *Registry) Dispatch(ctx context.Context, name, arguments string, state *model.CareState) (*model.ToolOutcome, error) {
	t, ok := r.tools[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", errx.ErrUnknownTool, name)
	}
	args := arguments
	if args == "" {
		args = "{}"
	}
	return t.Handler(ctx, json.RawMessage(args), state)
}
