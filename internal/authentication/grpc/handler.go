package grpc

import (
	"context"

	"github.com/dmitrijs2005/authslice/internal/authentication/users"
	"github.com/dmitrijs2005/authslice/internal/rpc"
)

func toRPCUser(u *users.User) rpc.User {
	return rpc.User{ID: u.ID, Name: u.Name, Email: u.Email, CreatedAt: u.CreatedAt}
}

func (s *GRPCServer) RegisterUser(ctx context.Context, req *rpc.RegisterUserRequest) (*rpc.RegisterUserReply, error) {

	s.logger.Info(ctx, "Registration request", "email", req.Email)

	user, err := s.users.Register(ctx, users.RegisterInput{Name: req.Name, Email: req.Email, Password: req.Password})
	if err != nil {
		s.logger.Warn(ctx, "Registration failed", "email", req.Email, "error", err.Error())
		return nil, rpc.ToStatus(err)
	}

	return &rpc.RegisterUserReply{User: toRPCUser(user)}, nil
}

func (s *GRPCServer) GetUsers(ctx context.Context, req *rpc.GetUsersRequest) (*rpc.GetUsersReply, error) {

	list, err := s.users.List(ctx)
	if err != nil {
		s.logger.Error(ctx, "Listing users failed", "error", err.Error())
		return nil, rpc.ToStatus(err)
	}

	if len(list) == 0 {
		return &rpc.GetUsersReply{Message: rpc.NoUsersMessage}, nil
	}

	reply := &rpc.GetUsersReply{Users: make([]rpc.User, 0, len(list))}
	for _, u := range list {
		reply.Users = append(reply.Users, toRPCUser(u))
	}
	return reply, nil
}

func (s *GRPCServer) ValidateUser(ctx context.Context, req *rpc.ValidateUserRequest) (*rpc.ValidateUserReply, error) {

	s.logger.Info(ctx, "Validation request", "email", req.Email)

	user, err := s.users.Validate(ctx, users.CredentialsInput{Email: req.Email, Password: req.Password})
	if err != nil {
		s.logger.Warn(ctx, "Validation failed", "email", req.Email, "error", err.Error())
		return nil, rpc.ToStatus(err)
	}

	return &rpc.ValidateUserReply{User: toRPCUser(user)}, nil
}
