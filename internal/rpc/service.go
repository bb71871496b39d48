package rpc

import (
	"context"

	"google.golang.org/grpc"
)

const (
	ServiceName = "authentication.Users"

	TagRegisterUser = "register_user"
	TagGetUsers     = "get_users"
	TagValidateUser = "validate_user"

	RegisterUserMethod = "/" + ServiceName + "/" + TagRegisterUser
	GetUsersMethod     = "/" + ServiceName + "/" + TagGetUsers
	ValidateUserMethod = "/" + ServiceName + "/" + TagValidateUser
)

// UsersServer is implemented by the authentication backend.
type UsersServer interface {
	RegisterUser(ctx context.Context, req *RegisterUserRequest) (*RegisterUserReply, error)
	GetUsers(ctx context.Context, req *GetUsersRequest) (*GetUsersReply, error)
	ValidateUser(ctx context.Context, req *ValidateUserRequest) (*ValidateUserReply, error)
}

// RegisterUsersServer attaches srv to a gRPC server.
func RegisterUsersServer(s grpc.ServiceRegistrar, srv UsersServer) {
	s.RegisterService(&UsersServiceDesc, srv)
}

// UsersServiceDesc describes the Users service for grpc.Server.
var UsersServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*UsersServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: TagRegisterUser, Handler: registerUserHandler},
		{MethodName: TagGetUsers, Handler: getUsersHandler},
		{MethodName: TagValidateUser, Handler: validateUserHandler},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "authentication/users",
}

func registerUserHandler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(RegisterUserRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(UsersServer).RegisterUser(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: RegisterUserMethod}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(UsersServer).RegisterUser(ctx, req.(*RegisterUserRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func getUsersHandler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(GetUsersRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(UsersServer).GetUsers(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: GetUsersMethod}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(UsersServer).GetUsers(ctx, req.(*GetUsersRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func validateUserHandler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(ValidateUserRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(UsersServer).ValidateUser(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: ValidateUserMethod}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(UsersServer).ValidateUser(ctx, req.(*ValidateUserRequest))
	}
	return interceptor(ctx, in, info, handler)
}

// UsersClient is the typed caller side of the Users service.
type UsersClient interface {
	RegisterUser(ctx context.Context, in *RegisterUserRequest, opts ...grpc.CallOption) (*RegisterUserReply, error)
	GetUsers(ctx context.Context, in *GetUsersRequest, opts ...grpc.CallOption) (*GetUsersReply, error)
	ValidateUser(ctx context.Context, in *ValidateUserRequest, opts ...grpc.CallOption) (*ValidateUserReply, error)
}

type usersClient struct {
	cc grpc.ClientConnInterface
}

// NewUsersClient wraps a connection. The JSON content subtype is added to
// every call.
func NewUsersClient(cc grpc.ClientConnInterface) UsersClient {
	return &usersClient{cc: cc}
}

func (c *usersClient) RegisterUser(ctx context.Context, in *RegisterUserRequest, opts ...grpc.CallOption) (*RegisterUserReply, error) {
	out := new(RegisterUserReply)
	if err := c.cc.Invoke(ctx, RegisterUserMethod, in, out, append(CallOptions(), opts...)...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *usersClient) GetUsers(ctx context.Context, in *GetUsersRequest, opts ...grpc.CallOption) (*GetUsersReply, error) {
	out := new(GetUsersReply)
	if err := c.cc.Invoke(ctx, GetUsersMethod, in, out, append(CallOptions(), opts...)...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *usersClient) ValidateUser(ctx context.Context, in *ValidateUserRequest, opts ...grpc.CallOption) (*ValidateUserReply, error) {
	out := new(ValidateUserReply)
	if err := c.cc.Invoke(ctx, ValidateUserMethod, in, out, append(CallOptions(), opts...)...); err != nil {
		return nil, err
	}
	return out, nil
}
