package server

import (
	"context"
	"errors"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mj1618/yman/internal/service"
	"gopkg.in/yaml.v3"
)

// resultToText serializes a tool result to YAML for the MCP response.
func resultToText(result any) string {
	b, err := yaml.Marshal(result)
	if err != nil {
		return fmt.Sprintf("error: %s", err)
	}
	return string(b)
}

// call runs fn with the provider lock held and renders its result.
func (s *Server) call(fn func() (any, error)) (*mcp.CallToolResult, error) {
	s.providerMu.Lock()
	defer s.providerMu.Unlock()

	result, err := fn()
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return mcp.NewToolResultText(resultToText(result)), nil
}

func requireName(params map[string]any) (string, error) {
	name := StringParam(params, "name", "")
	if name == "" {
		return "", errors.New("name is required")
	}
	return name, nil
}

func (s *Server) handleList(ctx context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return s.call(func() (any, error) {
		return s.svc.ListSessions(ctx)
	})
}

func (s *Server) handleShow(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	name, err := requireName(request.GetArguments())
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return s.call(func() (any, error) {
		return s.svc.ShowSession(ctx, name)
	})
}

func (s *Server) handleStore(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	params := request.GetArguments()
	name, err := requireName(params)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	keep := BoolParam(params, "keep", false)
	return s.call(func() (any, error) {
		return s.svc.StoreSession(ctx, name, !keep)
	})
}

func (s *Server) handleRestore(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	params := request.GetArguments()
	name, err := requireName(params)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	clearAfter := BoolParam(params, "clear", s.svc.Config().ClearAfterRestore)
	return s.call(func() (any, error) {
		return s.svc.RestoreSession(ctx, name, clearAfter)
	})
}

func (s *Server) handleDiff(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	params := request.GetArguments()
	name, err := requireName(params)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	keep := BoolParam(params, "keep", false)
	return s.call(func() (any, error) {
		return s.svc.DiffSession(ctx, name, !keep)
	})
}

func (s *Server) handleRemove(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	params := request.GetArguments()
	name, err := requireName(params)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	confirmed := BoolParam(params, "confirm", false)
	return s.call(func() (any, error) {
		res, err := s.svc.RemoveSession(ctx, name, func(string) (bool, error) {
			return confirmed, nil
		})
		if errors.Is(err, service.ErrAborted) {
			return nil, fmt.Errorf("%w: pass confirm=true to remove session %s", err, name)
		}
		return res, err
	})
}
