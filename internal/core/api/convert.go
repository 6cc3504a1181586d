package api

import (
	"context"
	"math"
	"strings"
	"time"

	"github.com/solatis/cronconv/internal/cronexpr"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/structpb"
)

// Wire field names. Value sets use the field kind name with "_" in place of "-".
const (
	keyExpression  = "expression"
	keyDefault     = "default"
	keyPeriod      = "period"
	keyPeriodLabel = "period_label"
	keyDisplay     = "display"
	keyFields      = "fields"
	keyName        = "name"
)

func wireName(kind cronexpr.FieldKind) string {
	return strings.ReplaceAll(kind.String(), "-", "_")
}

// Parse converts {expression, default?} into {period, period_label, <fields>}.
// Wildcard fields are omitted. Accepted empty input yields an empty period.
func (s *ConverterService) Parse(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	text, err := requiredString(req, keyExpression)
	if err != nil {
		return nil, err
	}

	parse := s.converter.Parse
	if v, ok := req.GetFields()[keyDefault]; ok && v.GetBoolValue() {
		parse = s.converter.ParseDefault
	}

	e, err := parse(text)
	if err != nil {
		return nil, statusError(err)
	}
	return s.expressionStruct(e)
}

// Render converts {period, <fields>} into {expression}.
func (s *ConverterService) Render(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	name, err := requiredString(req, keyPeriod)
	if err != nil {
		return nil, err
	}
	period, err := cronexpr.ParsePeriod(name)
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, err.Error())
	}

	var fields cronexpr.Fields
	for _, kind := range cronexpr.FieldKinds {
		values, err := intList(req, wireName(kind))
		if err != nil {
			return nil, err
		}
		fields.Set(kind, values)
	}

	e, err := cronexpr.New(period, fields)
	if err != nil {
		return nil, statusError(err)
	}
	if err := s.converter.CheckReadable(e); err != nil {
		return nil, statusError(err)
	}
	return structpb.NewStruct(map[string]any{
		keyExpression: s.converter.Render(e),
	})
}

// Format converts {expression} into {display, period, period_label, fields}
// using every display option of the converter. fields maps each field name
// to its formatted text.
func (s *ConverterService) Format(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	text, err := requiredString(req, keyExpression)
	if err != nil {
		return nil, err
	}
	e, err := s.converter.Parse(text)
	if err != nil {
		return nil, statusError(err)
	}

	fields := map[string]any{}
	for _, kind := range cronexpr.FieldKinds {
		fields[wireName(kind)] = s.converter.FormatField(e.Field(kind), kind)
	}
	return structpb.NewStruct(map[string]any{
		keyDisplay:     s.converter.Display(e),
		keyPeriod:      periodName(e),
		keyPeriodLabel: s.periodLabel(e),
		keyFields:      fields,
	})
}

// GetSchedule looks up {name} in the catalog and returns the stored record
// with its decoded fields.
func (s *ConverterService) GetSchedule(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	if s.schedules == nil {
		return nil, status.Error(codes.Unimplemented, "schedule catalog not configured")
	}
	name, err := requiredString(req, keyName)
	if err != nil {
		return nil, err
	}

	schedule, err := s.schedules.Get(ctx, name)
	if err != nil {
		return nil, statusError(err)
	}
	e, err := s.schedules.Decode(schedule)
	if err != nil {
		return nil, statusError(err)
	}

	out, err := s.expressionStruct(e)
	if err != nil {
		return nil, err
	}
	for key, value := range map[string]string{
		"schedule_id": string(schedule.ID),
		keyName:       schedule.Name,
		"source":      schedule.Source,
		keyExpression: schedule.Expression,
		keyDisplay:    s.converter.Display(e),
		"created_at":  schedule.CreatedAt.UTC().Format(time.RFC3339),
	} {
		out.Fields[key] = structpb.NewStringValue(value)
	}
	return out, nil
}

func (s *ConverterService) expressionStruct(e cronexpr.Expression) (*structpb.Struct, error) {
	m := map[string]any{
		keyPeriod:      periodName(e),
		keyPeriodLabel: s.periodLabel(e),
	}
	for _, kind := range cronexpr.FieldKinds {
		values := e.Field(kind)
		if values == nil {
			continue
		}
		list := make([]any, len(values))
		for i, v := range values {
			list[i] = v
		}
		m[wireName(kind)] = list
	}
	out, err := structpb.NewStruct(m)
	if err != nil {
		return nil, status.Error(codes.Internal, err.Error())
	}
	return out, nil
}

func periodName(e cronexpr.Expression) string {
	if e.IsZero() {
		return ""
	}
	return e.Period().String()
}

func (s *ConverterService) periodLabel(e cronexpr.Expression) string {
	if e.IsZero() {
		return ""
	}
	return s.converter.Options().Locale.PeriodLabel(e.Period())
}

func requiredString(req *structpb.Struct, key string) (string, error) {
	v, ok := req.GetFields()[key]
	if !ok {
		return "", status.Errorf(codes.InvalidArgument, "%s is required", key)
	}
	str, ok := v.GetKind().(*structpb.Value_StringValue)
	if !ok {
		return "", status.Errorf(codes.InvalidArgument, "%s must be a string", key)
	}
	return str.StringValue, nil
}

// intList reads an optional list of whole numbers. A missing key or null is a wildcard.
func intList(req *structpb.Struct, key string) ([]int, error) {
	v, ok := req.GetFields()[key]
	if !ok {
		return nil, nil
	}
	if _, isNull := v.GetKind().(*structpb.Value_NullValue); isNull {
		return nil, nil
	}
	list := v.GetListValue()
	if list == nil {
		return nil, status.Errorf(codes.InvalidArgument, "%s must be a list of numbers", key)
	}

	values := make([]int, 0, len(list.GetValues()))
	for _, item := range list.GetValues() {
		num, ok := item.GetKind().(*structpb.Value_NumberValue)
		if !ok {
			return nil, status.Errorf(codes.InvalidArgument, "%s must be a list of numbers", key)
		}
		n := num.NumberValue
		if n != math.Trunc(n) || math.Abs(n) > math.MaxInt32 {
			return nil, status.Errorf(codes.InvalidArgument, "%s: %v is not a whole number", key, n)
		}
		values = append(values, int(n))
	}
	return values, nil
}
