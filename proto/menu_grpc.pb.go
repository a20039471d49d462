// Code generated by protoc-gen-go-grpc. DO NOT EDIT.
// versions:
// - protoc-gen-go-grpc v1.6.2
// - protoc             (unknown)
// source: proto/menu.proto

package menuv1

import (
	context "context"
	grpc "google.golang.org/grpc"
	codes "google.golang.org/grpc/codes"
	status "google.golang.org/grpc/status"
)

// This is a compile-time assertion to ensure that this generated file
// is compatible with the grpc package it is being compiled against.
// Requires gRPC-Go v1.64.0 or later.
const _ = grpc.SupportPackageIsVersion9

const (
	MenuIntelService_ExtractText_FullMethodName       = "/kaiseki.menu.v1.MenuIntelService/ExtractText"
	MenuIntelService_CategorizeMenu_FullMethodName    = "/kaiseki.menu.v1.MenuIntelService/CategorizeMenu"
	MenuIntelService_Describe_FullMethodName          = "/kaiseki.menu.v1.MenuIntelService/Describe"
	MenuIntelService_DetectAllergens_FullMethodName   = "/kaiseki.menu.v1.MenuIntelService/DetectAllergens"
	MenuIntelService_DetectIngredients_FullMethodName = "/kaiseki.menu.v1.MenuIntelService/DetectIngredients"
	MenuIntelService_SynthesizeImage_FullMethodName   = "/kaiseki.menu.v1.MenuIntelService/SynthesizeImage"
)

// MenuIntelServiceClient is the client API for MenuIntelService service.
//
// For semantics around ctx use and closing/ending streaming RPCs, please refer to https://pkg.go.dev/google.golang.org/grpc/?tab=doc#ClientConn.NewStream.
//
// MenuIntelService is the vision/LLM sidecar consumed by the pipeline.
// One service covers every model-backed capability; the Go side wraps
// each RPC in a typed adapter with its own rate bucket and timeout.
type MenuIntelServiceClient interface {
	ExtractText(ctx context.Context, in *ExtractTextRequest, opts ...grpc.CallOption) (*ExtractTextResponse, error)
	CategorizeMenu(ctx context.Context, in *CategorizeMenuRequest, opts ...grpc.CallOption) (*CategorizeMenuResponse, error)
	Describe(ctx context.Context, in *DescribeRequest, opts ...grpc.CallOption) (*DescribeResponse, error)
	DetectAllergens(ctx context.Context, in *DetectRequest, opts ...grpc.CallOption) (*DetectAllergensResponse, error)
	DetectIngredients(ctx context.Context, in *DetectRequest, opts ...grpc.CallOption) (*DetectIngredientsResponse, error)
	SynthesizeImage(ctx context.Context, in *SynthesizeImageRequest, opts ...grpc.CallOption) (*SynthesizeImageResponse, error)
}

type menuIntelServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewMenuIntelServiceClient(cc grpc.ClientConnInterface) MenuIntelServiceClient {
	return &menuIntelServiceClient{cc}
}

func (c *menuIntelServiceClient) ExtractText(ctx context.Context, in *ExtractTextRequest, opts ...grpc.CallOption) (*ExtractTextResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ExtractTextResponse)
	err := c.cc.Invoke(ctx, MenuIntelService_ExtractText_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *menuIntelServiceClient) CategorizeMenu(ctx context.Context, in *CategorizeMenuRequest, opts ...grpc.CallOption) (*CategorizeMenuResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(CategorizeMenuResponse)
	err := c.cc.Invoke(ctx, MenuIntelService_CategorizeMenu_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *menuIntelServiceClient) Describe(ctx context.Context, in *DescribeRequest, opts ...grpc.CallOption) (*DescribeResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(DescribeResponse)
	err := c.cc.Invoke(ctx, MenuIntelService_Describe_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *menuIntelServiceClient) DetectAllergens(ctx context.Context, in *DetectRequest, opts ...grpc.CallOption) (*DetectAllergensResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(DetectAllergensResponse)
	err := c.cc.Invoke(ctx, MenuIntelService_DetectAllergens_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *menuIntelServiceClient) DetectIngredients(ctx context.Context, in *DetectRequest, opts ...grpc.CallOption) (*DetectIngredientsResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(DetectIngredientsResponse)
	err := c.cc.Invoke(ctx, MenuIntelService_DetectIngredients_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *menuIntelServiceClient) SynthesizeImage(ctx context.Context, in *SynthesizeImageRequest, opts ...grpc.CallOption) (*SynthesizeImageResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(SynthesizeImageResponse)
	err := c.cc.Invoke(ctx, MenuIntelService_SynthesizeImage_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

// MenuIntelServiceServer is the server API for MenuIntelService service.
// All implementations must embed UnimplementedMenuIntelServiceServer
// for forward compatibility.
//
// MenuIntelService is the vision/LLM sidecar consumed by the pipeline.
// One service covers every model-backed capability; the Go side wraps
// each RPC in a typed adapter with its own rate bucket and timeout.
type MenuIntelServiceServer interface {
	ExtractText(context.Context, *ExtractTextRequest) (*ExtractTextResponse, error)
	CategorizeMenu(context.Context, *CategorizeMenuRequest) (*CategorizeMenuResponse, error)
	Describe(context.Context, *DescribeRequest) (*DescribeResponse, error)
	DetectAllergens(context.Context, *DetectRequest) (*DetectAllergensResponse, error)
	DetectIngredients(context.Context, *DetectRequest) (*DetectIngredientsResponse, error)
	SynthesizeImage(context.Context, *SynthesizeImageRequest) (*SynthesizeImageResponse, error)
	mustEmbedUnimplementedMenuIntelServiceServer()
}

// UnimplementedMenuIntelServiceServer must be embedded to have
// forward compatible implementations.
//
// NOTE: this should be embedded by value instead of pointer to avoid a nil
// pointer dereference when methods are called.
type UnimplementedMenuIntelServiceServer struct{}

func (UnimplementedMenuIntelServiceServer) ExtractText(context.Context, *ExtractTextRequest) (*ExtractTextResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method ExtractText not implemented")
}
func (UnimplementedMenuIntelServiceServer) CategorizeMenu(context.Context, *CategorizeMenuRequest) (*CategorizeMenuResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method CategorizeMenu not implemented")
}
func (UnimplementedMenuIntelServiceServer) Describe(context.Context, *DescribeRequest) (*DescribeResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method Describe not implemented")
}
func (UnimplementedMenuIntelServiceServer) DetectAllergens(context.Context, *DetectRequest) (*DetectAllergensResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method DetectAllergens not implemented")
}
func (UnimplementedMenuIntelServiceServer) DetectIngredients(context.Context, *DetectRequest) (*DetectIngredientsResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method DetectIngredients not implemented")
}
func (UnimplementedMenuIntelServiceServer) SynthesizeImage(context.Context, *SynthesizeImageRequest) (*SynthesizeImageResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method SynthesizeImage not implemented")
}
func (UnimplementedMenuIntelServiceServer) mustEmbedUnimplementedMenuIntelServiceServer() {}
func (UnimplementedMenuIntelServiceServer) testEmbeddedByValue()                          {}

// UnsafeMenuIntelServiceServer may be embedded to opt out of forward compatibility for this service.
// Use of this interface is not recommended, as added methods to MenuIntelServiceServer will
// result in compilation errors.
type UnsafeMenuIntelServiceServer interface {
	mustEmbedUnimplementedMenuIntelServiceServer()
}

func RegisterMenuIntelServiceServer(s grpc.ServiceRegistrar, srv MenuIntelServiceServer) {
	// If the following call panics, it indicates UnimplementedMenuIntelServiceServer was
	// embedded by pointer and is nil.  This will cause panics if an
	// unimplemented method is ever invoked, so we test this at initialization
	// time to prevent it from happening at runtime later due to I/O.
	if t, ok := srv.(interface{ testEmbeddedByValue() }); ok {
		t.testEmbeddedByValue()
	}
	s.RegisterService(&MenuIntelService_ServiceDesc, srv)
}

func _MenuIntelService_ExtractText_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ExtractTextRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(MenuIntelServiceServer).ExtractText(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: MenuIntelService_ExtractText_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(MenuIntelServiceServer).ExtractText(ctx, req.(*ExtractTextRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _MenuIntelService_CategorizeMenu_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(CategorizeMenuRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(MenuIntelServiceServer).CategorizeMenu(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: MenuIntelService_CategorizeMenu_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(MenuIntelServiceServer).CategorizeMenu(ctx, req.(*CategorizeMenuRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _MenuIntelService_Describe_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(DescribeRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(MenuIntelServiceServer).Describe(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: MenuIntelService_Describe_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(MenuIntelServiceServer).Describe(ctx, req.(*DescribeRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _MenuIntelService_DetectAllergens_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(DetectRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(MenuIntelServiceServer).DetectAllergens(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: MenuIntelService_DetectAllergens_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(MenuIntelServiceServer).DetectAllergens(ctx, req.(*DetectRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _MenuIntelService_DetectIngredients_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(DetectRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(MenuIntelServiceServer).DetectIngredients(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: MenuIntelService_DetectIngredients_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(MenuIntelServiceServer).DetectIngredients(ctx, req.(*DetectRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _MenuIntelService_SynthesizeImage_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(SynthesizeImageRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(MenuIntelServiceServer).SynthesizeImage(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: MenuIntelService_SynthesizeImage_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(MenuIntelServiceServer).SynthesizeImage(ctx, req.(*SynthesizeImageRequest))
	}
	return interceptor(ctx, in, info, handler)
}

// MenuIntelService_ServiceDesc is the grpc.ServiceDesc for MenuIntelService service.
// It's only intended for direct use with grpc.RegisterService,
// and not to be introspected or modified (even as a copy)
var MenuIntelService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "kaiseki.menu.v1.MenuIntelService",
	HandlerType: (*MenuIntelServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "ExtractText",
			Handler:    _MenuIntelService_ExtractText_Handler,
		},
		{
			MethodName: "CategorizeMenu",
			Handler:    _MenuIntelService_CategorizeMenu_Handler,
		},
		{
			MethodName: "Describe",
			Handler:    _MenuIntelService_Describe_Handler,
		},
		{
			MethodName: "DetectAllergens",
			Handler:    _MenuIntelService_DetectAllergens_Handler,
		},
		{
			MethodName: "DetectIngredients",
			Handler:    _MenuIntelService_DetectIngredients_Handler,
		},
		{
			MethodName: "SynthesizeImage",
			Handler:    _MenuIntelService_SynthesizeImage_Handler,
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "proto/menu.proto",
}
