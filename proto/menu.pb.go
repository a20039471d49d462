// Code generated by protoc-gen-go. DO NOT EDIT.
// versions:
// 	protoc-gen-go v1.36.11
// 	protoc        (unknown)
// source: proto/menu.proto

package menuv1

import (
	protoreflect "google.golang.org/protobuf/reflect/protoreflect"
	protoimpl "google.golang.org/protobuf/runtime/protoimpl"
	reflect "reflect"
	sync "sync"
	unsafe "unsafe"
)

const (
	// Verify that this generated code is sufficiently up-to-date.
	_ = protoimpl.EnforceVersion(20 - protoimpl.MinVersion)
	// Verify that runtime/protoimpl is sufficiently up-to-date.
	_ = protoimpl.EnforceVersion(protoimpl.MaxVersion - 20)
)

type ExtractTextRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Image         []byte                 `protobuf:"bytes,1,opt,name=image,proto3" json:"image,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ExtractTextRequest) Reset() {
	*x = ExtractTextRequest{}
	mi := &file_proto_menu_proto_msgTypes[0]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ExtractTextRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ExtractTextRequest) ProtoMessage() {}

func (x *ExtractTextRequest) ProtoReflect() protoreflect.Message {
	mi := &file_proto_menu_proto_msgTypes[0]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ExtractTextRequest.ProtoReflect.Descriptor instead.
func (*ExtractTextRequest) Descriptor() ([]byte, []int) {
	return file_proto_menu_proto_rawDescGZIP(), []int{0}
}

func (x *ExtractTextRequest) GetImage() []byte {
	if x != nil {
		return x.Image
	}
	return nil
}

type BoundingBox struct {
	state protoimpl.MessageState `protogen:"open.v1"`
	// Four corners, clockwise from top-left, in pixel coordinates.
	Corners       []*Point `protobuf:"bytes,1,rep,name=corners,proto3" json:"corners,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *BoundingBox) Reset() {
	*x = BoundingBox{}
	mi := &file_proto_menu_proto_msgTypes[1]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *BoundingBox) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*BoundingBox) ProtoMessage() {}

func (x *BoundingBox) ProtoReflect() protoreflect.Message {
	mi := &file_proto_menu_proto_msgTypes[1]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use BoundingBox.ProtoReflect.Descriptor instead.
func (*BoundingBox) Descriptor() ([]byte, []int) {
	return file_proto_menu_proto_rawDescGZIP(), []int{1}
}

func (x *BoundingBox) GetCorners() []*Point {
	if x != nil {
		return x.Corners
	}
	return nil
}

type Point struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	X             int32                  `protobuf:"varint,1,opt,name=x,proto3" json:"x,omitempty"`
	Y             int32                  `protobuf:"varint,2,opt,name=y,proto3" json:"y,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *Point) Reset() {
	*x = Point{}
	mi := &file_proto_menu_proto_msgTypes[2]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *Point) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*Point) ProtoMessage() {}

func (x *Point) ProtoReflect() protoreflect.Message {
	mi := &file_proto_menu_proto_msgTypes[2]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use Point.ProtoReflect.Descriptor instead.
func (*Point) Descriptor() ([]byte, []int) {
	return file_proto_menu_proto_rawDescGZIP(), []int{2}
}

func (x *Point) GetX() int32 {
	if x != nil {
		return x.X
	}
	return 0
}

func (x *Point) GetY() int32 {
	if x != nil {
		return x.Y
	}
	return 0
}

type Token struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Text          string                 `protobuf:"bytes,1,opt,name=text,proto3" json:"text,omitempty"`
	Box           *BoundingBox           `protobuf:"bytes,2,opt,name=box,proto3" json:"box,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *Token) Reset() {
	*x = Token{}
	mi := &file_proto_menu_proto_msgTypes[3]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *Token) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*Token) ProtoMessage() {}

func (x *Token) ProtoReflect() protoreflect.Message {
	mi := &file_proto_menu_proto_msgTypes[3]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use Token.ProtoReflect.Descriptor instead.
func (*Token) Descriptor() ([]byte, []int) {
	return file_proto_menu_proto_rawDescGZIP(), []int{3}
}

func (x *Token) GetText() string {
	if x != nil {
		return x.Text
	}
	return ""
}

func (x *Token) GetBox() *BoundingBox {
	if x != nil {
		return x.Box
	}
	return nil
}

type ExtractTextResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Tokens        []*Token               `protobuf:"bytes,1,rep,name=tokens,proto3" json:"tokens,omitempty"`
	FullText      string                 `protobuf:"bytes,2,opt,name=full_text,json=fullText,proto3" json:"full_text,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ExtractTextResponse) Reset() {
	*x = ExtractTextResponse{}
	mi := &file_proto_menu_proto_msgTypes[4]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ExtractTextResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ExtractTextResponse) ProtoMessage() {}

func (x *ExtractTextResponse) ProtoReflect() protoreflect.Message {
	mi := &file_proto_menu_proto_msgTypes[4]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ExtractTextResponse.ProtoReflect.Descriptor instead.
func (*ExtractTextResponse) Descriptor() ([]byte, []int) {
	return file_proto_menu_proto_rawDescGZIP(), []int{4}
}

func (x *ExtractTextResponse) GetTokens() []*Token {
	if x != nil {
		return x.Tokens
	}
	return nil
}

func (x *ExtractTextResponse) GetFullText() string {
	if x != nil {
		return x.FullText
	}
	return ""
}

type CategorizeMenuRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	FullText      string                 `protobuf:"bytes,1,opt,name=full_text,json=fullText,proto3" json:"full_text,omitempty"`
	Tokens        []*Token               `protobuf:"bytes,2,rep,name=tokens,proto3" json:"tokens,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *CategorizeMenuRequest) Reset() {
	*x = CategorizeMenuRequest{}
	mi := &file_proto_menu_proto_msgTypes[5]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *CategorizeMenuRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*CategorizeMenuRequest) ProtoMessage() {}

func (x *CategorizeMenuRequest) ProtoReflect() protoreflect.Message {
	mi := &file_proto_menu_proto_msgTypes[5]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use CategorizeMenuRequest.ProtoReflect.Descriptor instead.
func (*CategorizeMenuRequest) Descriptor() ([]byte, []int) {
	return file_proto_menu_proto_rawDescGZIP(), []int{5}
}

func (x *CategorizeMenuRequest) GetFullText() string {
	if x != nil {
		return x.FullText
	}
	return ""
}

func (x *CategorizeMenuRequest) GetTokens() []*Token {
	if x != nil {
		return x.Tokens
	}
	return nil
}

type CategorizedItem struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Name          string                 `protobuf:"bytes,1,opt,name=name,proto3" json:"name,omitempty"`
	Price         string                 `protobuf:"bytes,2,opt,name=price,proto3" json:"price,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *CategorizedItem) Reset() {
	*x = CategorizedItem{}
	mi := &file_proto_menu_proto_msgTypes[6]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *CategorizedItem) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*CategorizedItem) ProtoMessage() {}

func (x *CategorizedItem) ProtoReflect() protoreflect.Message {
	mi := &file_proto_menu_proto_msgTypes[6]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use CategorizedItem.ProtoReflect.Descriptor instead.
func (*CategorizedItem) Descriptor() ([]byte, []int) {
	return file_proto_menu_proto_rawDescGZIP(), []int{6}
}

func (x *CategorizedItem) GetName() string {
	if x != nil {
		return x.Name
	}
	return ""
}

func (x *CategorizedItem) GetPrice() string {
	if x != nil {
		return x.Price
	}
	return ""
}

type Category struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Name          string                 `protobuf:"bytes,1,opt,name=name,proto3" json:"name,omitempty"`
	Items         []*CategorizedItem     `protobuf:"bytes,2,rep,name=items,proto3" json:"items,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *Category) Reset() {
	*x = Category{}
	mi := &file_proto_menu_proto_msgTypes[7]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *Category) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*Category) ProtoMessage() {}

func (x *Category) ProtoReflect() protoreflect.Message {
	mi := &file_proto_menu_proto_msgTypes[7]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use Category.ProtoReflect.Descriptor instead.
func (*Category) Descriptor() ([]byte, []int) {
	return file_proto_menu_proto_rawDescGZIP(), []int{7}
}

func (x *Category) GetName() string {
	if x != nil {
		return x.Name
	}
	return ""
}

func (x *Category) GetItems() []*CategorizedItem {
	if x != nil {
		return x.Items
	}
	return nil
}

type CategorizeMenuResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Categories    []*Category            `protobuf:"bytes,1,rep,name=categories,proto3" json:"categories,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *CategorizeMenuResponse) Reset() {
	*x = CategorizeMenuResponse{}
	mi := &file_proto_menu_proto_msgTypes[8]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *CategorizeMenuResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*CategorizeMenuResponse) ProtoMessage() {}

func (x *CategorizeMenuResponse) ProtoReflect() protoreflect.Message {
	mi := &file_proto_menu_proto_msgTypes[8]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use CategorizeMenuResponse.ProtoReflect.Descriptor instead.
func (*CategorizeMenuResponse) Descriptor() ([]byte, []int) {
	return file_proto_menu_proto_rawDescGZIP(), []int{8}
}

func (x *CategorizeMenuResponse) GetCategories() []*Category {
	if x != nil {
		return x.Categories
	}
	return nil
}

type DescribeRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Name          string                 `protobuf:"bytes,1,opt,name=name,proto3" json:"name,omitempty"`
	Category      string                 `protobuf:"bytes,2,opt,name=category,proto3" json:"category,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *DescribeRequest) Reset() {
	*x = DescribeRequest{}
	mi := &file_proto_menu_proto_msgTypes[9]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *DescribeRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*DescribeRequest) ProtoMessage() {}

func (x *DescribeRequest) ProtoReflect() protoreflect.Message {
	mi := &file_proto_menu_proto_msgTypes[9]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use DescribeRequest.ProtoReflect.Descriptor instead.
func (*DescribeRequest) Descriptor() ([]byte, []int) {
	return file_proto_menu_proto_rawDescGZIP(), []int{9}
}

func (x *DescribeRequest) GetName() string {
	if x != nil {
		return x.Name
	}
	return ""
}

func (x *DescribeRequest) GetCategory() string {
	if x != nil {
		return x.Category
	}
	return ""
}

type DescribeResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Description   string                 `protobuf:"bytes,1,opt,name=description,proto3" json:"description,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *DescribeResponse) Reset() {
	*x = DescribeResponse{}
	mi := &file_proto_menu_proto_msgTypes[10]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *DescribeResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*DescribeResponse) ProtoMessage() {}

func (x *DescribeResponse) ProtoReflect() protoreflect.Message {
	mi := &file_proto_menu_proto_msgTypes[10]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use DescribeResponse.ProtoReflect.Descriptor instead.
func (*DescribeResponse) Descriptor() ([]byte, []int) {
	return file_proto_menu_proto_rawDescGZIP(), []int{10}
}

func (x *DescribeResponse) GetDescription() string {
	if x != nil {
		return x.Description
	}
	return ""
}

type DetectRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Name          string                 `protobuf:"bytes,1,opt,name=name,proto3" json:"name,omitempty"`
	Category      string                 `protobuf:"bytes,2,opt,name=category,proto3" json:"category,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *DetectRequest) Reset() {
	*x = DetectRequest{}
	mi := &file_proto_menu_proto_msgTypes[11]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *DetectRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*DetectRequest) ProtoMessage() {}

func (x *DetectRequest) ProtoReflect() protoreflect.Message {
	mi := &file_proto_menu_proto_msgTypes[11]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use DetectRequest.ProtoReflect.Descriptor instead.
func (*DetectRequest) Descriptor() ([]byte, []int) {
	return file_proto_menu_proto_rawDescGZIP(), []int{11}
}

func (x *DetectRequest) GetName() string {
	if x != nil {
		return x.Name
	}
	return ""
}

func (x *DetectRequest) GetCategory() string {
	if x != nil {
		return x.Category
	}
	return ""
}

type AllergenEntry struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Name          string                 `protobuf:"bytes,1,opt,name=name,proto3" json:"name,omitempty"`
	Severity      string                 `protobuf:"bytes,2,opt,name=severity,proto3" json:"severity,omitempty"`
	Likelihood    string                 `protobuf:"bytes,3,opt,name=likelihood,proto3" json:"likelihood,omitempty"`
	Source        string                 `protobuf:"bytes,4,opt,name=source,proto3" json:"source,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *AllergenEntry) Reset() {
	*x = AllergenEntry{}
	mi := &file_proto_menu_proto_msgTypes[12]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *AllergenEntry) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*AllergenEntry) ProtoMessage() {}

func (x *AllergenEntry) ProtoReflect() protoreflect.Message {
	mi := &file_proto_menu_proto_msgTypes[12]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use AllergenEntry.ProtoReflect.Descriptor instead.
func (*AllergenEntry) Descriptor() ([]byte, []int) {
	return file_proto_menu_proto_rawDescGZIP(), []int{12}
}

func (x *AllergenEntry) GetName() string {
	if x != nil {
		return x.Name
	}
	return ""
}

func (x *AllergenEntry) GetSeverity() string {
	if x != nil {
		return x.Severity
	}
	return ""
}

func (x *AllergenEntry) GetLikelihood() string {
	if x != nil {
		return x.Likelihood
	}
	return ""
}

func (x *AllergenEntry) GetSource() string {
	if x != nil {
		return x.Source
	}
	return ""
}

type DetectAllergensResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Entries       []*AllergenEntry       `protobuf:"bytes,1,rep,name=entries,proto3" json:"entries,omitempty"`
	Confidence    float64                `protobuf:"fixed64,2,opt,name=confidence,proto3" json:"confidence,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *DetectAllergensResponse) Reset() {
	*x = DetectAllergensResponse{}
	mi := &file_proto_menu_proto_msgTypes[13]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *DetectAllergensResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*DetectAllergensResponse) ProtoMessage() {}

func (x *DetectAllergensResponse) ProtoReflect() protoreflect.Message {
	mi := &file_proto_menu_proto_msgTypes[13]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use DetectAllergensResponse.ProtoReflect.Descriptor instead.
func (*DetectAllergensResponse) Descriptor() ([]byte, []int) {
	return file_proto_menu_proto_rawDescGZIP(), []int{13}
}

func (x *DetectAllergensResponse) GetEntries() []*AllergenEntry {
	if x != nil {
		return x.Entries
	}
	return nil
}

func (x *DetectAllergensResponse) GetConfidence() float64 {
	if x != nil {
		return x.Confidence
	}
	return 0
}

type IngredientEntry struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Name          string                 `protobuf:"bytes,1,opt,name=name,proto3" json:"name,omitempty"`
	Role          string                 `protobuf:"bytes,2,opt,name=role,proto3" json:"role,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *IngredientEntry) Reset() {
	*x = IngredientEntry{}
	mi := &file_proto_menu_proto_msgTypes[14]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *IngredientEntry) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*IngredientEntry) ProtoMessage() {}

func (x *IngredientEntry) ProtoReflect() protoreflect.Message {
	mi := &file_proto_menu_proto_msgTypes[14]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use IngredientEntry.ProtoReflect.Descriptor instead.
func (*IngredientEntry) Descriptor() ([]byte, []int) {
	return file_proto_menu_proto_rawDescGZIP(), []int{14}
}

func (x *IngredientEntry) GetName() string {
	if x != nil {
		return x.Name
	}
	return ""
}

func (x *IngredientEntry) GetRole() string {
	if x != nil {
		return x.Role
	}
	return ""
}

type DetectIngredientsResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Ingredients   []*IngredientEntry     `protobuf:"bytes,1,rep,name=ingredients,proto3" json:"ingredients,omitempty"`
	Confidence    float64                `protobuf:"fixed64,2,opt,name=confidence,proto3" json:"confidence,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *DetectIngredientsResponse) Reset() {
	*x = DetectIngredientsResponse{}
	mi := &file_proto_menu_proto_msgTypes[15]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *DetectIngredientsResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*DetectIngredientsResponse) ProtoMessage() {}

func (x *DetectIngredientsResponse) ProtoReflect() protoreflect.Message {
	mi := &file_proto_menu_proto_msgTypes[15]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use DetectIngredientsResponse.ProtoReflect.Descriptor instead.
func (*DetectIngredientsResponse) Descriptor() ([]byte, []int) {
	return file_proto_menu_proto_rawDescGZIP(), []int{15}
}

func (x *DetectIngredientsResponse) GetIngredients() []*IngredientEntry {
	if x != nil {
		return x.Ingredients
	}
	return nil
}

func (x *DetectIngredientsResponse) GetConfidence() float64 {
	if x != nil {
		return x.Confidence
	}
	return 0
}

type SynthesizeImageRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Name          string                 `protobuf:"bytes,1,opt,name=name,proto3" json:"name,omitempty"`
	Category      string                 `protobuf:"bytes,2,opt,name=category,proto3" json:"category,omitempty"`
	Description   string                 `protobuf:"bytes,3,opt,name=description,proto3" json:"description,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *SynthesizeImageRequest) Reset() {
	*x = SynthesizeImageRequest{}
	mi := &file_proto_menu_proto_msgTypes[16]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *SynthesizeImageRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*SynthesizeImageRequest) ProtoMessage() {}

func (x *SynthesizeImageRequest) ProtoReflect() protoreflect.Message {
	mi := &file_proto_menu_proto_msgTypes[16]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use SynthesizeImageRequest.ProtoReflect.Descriptor instead.
func (*SynthesizeImageRequest) Descriptor() ([]byte, []int) {
	return file_proto_menu_proto_rawDescGZIP(), []int{16}
}

func (x *SynthesizeImageRequest) GetName() string {
	if x != nil {
		return x.Name
	}
	return ""
}

func (x *SynthesizeImageRequest) GetCategory() string {
	if x != nil {
		return x.Category
	}
	return ""
}

func (x *SynthesizeImageRequest) GetDescription() string {
	if x != nil {
		return x.Description
	}
	return ""
}

type SynthesizeImageResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Image         []byte                 `protobuf:"bytes,1,opt,name=image,proto3" json:"image,omitempty"`
	ContentType   string                 `protobuf:"bytes,2,opt,name=content_type,json=contentType,proto3" json:"content_type,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *SynthesizeImageResponse) Reset() {
	*x = SynthesizeImageResponse{}
	mi := &file_proto_menu_proto_msgTypes[17]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *SynthesizeImageResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*SynthesizeImageResponse) ProtoMessage() {}

func (x *SynthesizeImageResponse) ProtoReflect() protoreflect.Message {
	mi := &file_proto_menu_proto_msgTypes[17]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use SynthesizeImageResponse.ProtoReflect.Descriptor instead.
func (*SynthesizeImageResponse) Descriptor() ([]byte, []int) {
	return file_proto_menu_proto_rawDescGZIP(), []int{17}
}

func (x *SynthesizeImageResponse) GetImage() []byte {
	if x != nil {
		return x.Image
	}
	return nil
}

func (x *SynthesizeImageResponse) GetContentType() string {
	if x != nil {
		return x.ContentType
	}
	return ""
}

var File_proto_menu_proto protoreflect.FileDescriptor

const file_proto_menu_proto_rawDesc = "" +
	"\n" +
	"\x10proto/menu.proto\x12\x0fkaiseki.menu.v1\"*\n" +
	"\x12ExtractTextRequest\x12\x14\n" +
	"\x05image\x18\x01 \x01(\fR\x05image\"?\n" +
	"\vBoundingBox\x120\n" +
	"\acorners\x18\x01 \x03(\v2\x16.kaiseki.menu.v1.PointR\acorners\"#\n" +
	"\x05Point\x12\f\n" +
	"\x01x\x18\x01 \x01(\x05R\x01x\x12\f\n" +
	"\x01y\x18\x02 \x01(\x05R\x01y\"K\n" +
	"\x05Token\x12\x12\n" +
	"\x04text\x18\x01 \x01(\tR\x04text\x12.\n" +
	"\x03box\x18\x02 \x01(\v2\x1c.kaiseki.menu.v1.BoundingBoxR\x03box\"b\n" +
	"\x13ExtractTextResponse\x12.\n" +
	"\x06tokens\x18\x01 \x03(\v2\x16.kaiseki.menu.v1.TokenR\x06tokens\x12\x1b\n" +
	"\tfull_text\x18\x02 \x01(\tR\bfullText\"d\n" +
	"\x15CategorizeMenuRequest\x12\x1b\n" +
	"\tfull_text\x18\x01 \x01(\tR\bfullText\x12.\n" +
	"\x06tokens\x18\x02 \x03(\v2\x16.kaiseki.menu.v1.TokenR\x06tokens\";\n" +
	"\x0fCategorizedItem\x12\x12\n" +
	"\x04name\x18\x01 \x01(\tR\x04name\x12\x14\n" +
	"\x05price\x18\x02 \x01(\tR\x05price\"V\n" +
	"\bCategory\x12\x12\n" +
	"\x04name\x18\x01 \x01(\tR\x04name\x126\n" +
	"\x05items\x18\x02 \x03(\v2 .kaiseki.menu.v1.CategorizedItemR\x05items\"S\n" +
	"\x16CategorizeMenuResponse\x129\n" +
	"\n" +
	"categories\x18\x01 \x03(\v2\x19.kaiseki.menu.v1.CategoryR\n" +
	"categories\"A\n" +
	"\x0fDescribeRequest\x12\x12\n" +
	"\x04name\x18\x01 \x01(\tR\x04name\x12\x1a\n" +
	"\bcategory\x18\x02 \x01(\tR\bcategory\"4\n" +
	"\x10DescribeResponse\x12 \n" +
	"\vdescription\x18\x01 \x01(\tR\vdescription\"?\n" +
	"\rDetectRequest\x12\x12\n" +
	"\x04name\x18\x01 \x01(\tR\x04name\x12\x1a\n" +
	"\bcategory\x18\x02 \x01(\tR\bcategory\"w\n" +
	"\rAllergenEntry\x12\x12\n" +
	"\x04name\x18\x01 \x01(\tR\x04name\x12\x1a\n" +
	"\bseverity\x18\x02 \x01(\tR\bseverity\x12\x1e\n" +
	"\n" +
	"likelihood\x18\x03 \x01(\tR\n" +
	"likelihood\x12\x16\n" +
	"\x06source\x18\x04 \x01(\tR\x06source\"s\n" +
	"\x17DetectAllergensResponse\x128\n" +
	"\aentries\x18\x01 \x03(\v2\x1e.kaiseki.menu.v1.AllergenEntryR\aentries\x12\x1e\n" +
	"\n" +
	"confidence\x18\x02 \x01(\x01R\n" +
	"confidence\"9\n" +
	"\x0fIngredientEntry\x12\x12\n" +
	"\x04name\x18\x01 \x01(\tR\x04name\x12\x12\n" +
	"\x04role\x18\x02 \x01(\tR\x04role\"\x7f\n" +
	"\x19DetectIngredientsResponse\x12B\n" +
	"\vingredients\x18\x01 \x03(\v2 .kaiseki.menu.v1.IngredientEntryR\vingredients\x12\x1e\n" +
	"\n" +
	"confidence\x18\x02 \x01(\x01R\n" +
	"confidence\"j\n" +
	"\x16SynthesizeImageRequest\x12\x12\n" +
	"\x04name\x18\x01 \x01(\tR\x04name\x12\x1a\n" +
	"\bcategory\x18\x02 \x01(\tR\bcategory\x12 \n" +
	"\vdescription\x18\x03 \x01(\tR\vdescription\"R\n" +
	"\x17SynthesizeImageResponse\x12\x14\n" +
	"\x05image\x18\x01 \x01(\fR\x05image\x12!\n" +
	"\fcontent_type\x18\x02 \x01(\tR\vcontentType2\xc4\x04\n" +
	"\x10MenuIntelService\x12X\n" +
	"\vExtractText\x12#.kaiseki.menu.v1.ExtractTextRequest\x1a$.kaiseki.menu.v1.ExtractTextResponse\x12a\n" +
	"\x0eCategorizeMenu\x12&.kaiseki.menu.v1.CategorizeMenuRequest\x1a'.kaiseki.menu.v1.CategorizeMenuResponse\x12O\n" +
	"\bDescribe\x12 .kaiseki.menu.v1.DescribeRequest\x1a!.kaiseki.menu.v1.DescribeResponse\x12[\n" +
	"\x0fDetectAllergens\x12\x1e.kaiseki.menu.v1.DetectRequest\x1a(.kaiseki.menu.v1.DetectAllergensResponse\x12_\n" +
	"\x11DetectIngredients\x12\x1e.kaiseki.menu.v1.DetectRequest\x1a*.kaiseki.menu.v1.DetectIngredientsResponse\x12d\n" +
	"\x0fSynthesizeImage\x12'.kaiseki.menu.v1.SynthesizeImageRequest\x1a(.kaiseki.menu.v1.SynthesizeImageResponseB,Z*github.com/kaiseki-io/kaiseki/proto;menuv1b\x06proto3"

var (
	file_proto_menu_proto_rawDescOnce sync.Once
	file_proto_menu_proto_rawDescData []byte
)

func file_proto_menu_proto_rawDescGZIP() []byte {
	file_proto_menu_proto_rawDescOnce.Do(func() {
		file_proto_menu_proto_rawDescData = protoimpl.X.CompressGZIP(unsafe.Slice(unsafe.StringData(file_proto_menu_proto_rawDesc), len(file_proto_menu_proto_rawDesc)))
	})
	return file_proto_menu_proto_rawDescData
}

var file_proto_menu_proto_msgTypes = make([]protoimpl.MessageInfo, 18)
var file_proto_menu_proto_goTypes = []any{
	(*ExtractTextRequest)(nil),        // 0: kaiseki.menu.v1.ExtractTextRequest
	(*BoundingBox)(nil),               // 1: kaiseki.menu.v1.BoundingBox
	(*Point)(nil),                     // 2: kaiseki.menu.v1.Point
	(*Token)(nil),                     // 3: kaiseki.menu.v1.Token
	(*ExtractTextResponse)(nil),       // 4: kaiseki.menu.v1.ExtractTextResponse
	(*CategorizeMenuRequest)(nil),     // 5: kaiseki.menu.v1.CategorizeMenuRequest
	(*CategorizedItem)(nil),           // 6: kaiseki.menu.v1.CategorizedItem
	(*Category)(nil),                  // 7: kaiseki.menu.v1.Category
	(*CategorizeMenuResponse)(nil),    // 8: kaiseki.menu.v1.CategorizeMenuResponse
	(*DescribeRequest)(nil),           // 9: kaiseki.menu.v1.DescribeRequest
	(*DescribeResponse)(nil),          // 10: kaiseki.menu.v1.DescribeResponse
	(*DetectRequest)(nil),             // 11: kaiseki.menu.v1.DetectRequest
	(*AllergenEntry)(nil),             // 12: kaiseki.menu.v1.AllergenEntry
	(*DetectAllergensResponse)(nil),   // 13: kaiseki.menu.v1.DetectAllergensResponse
	(*IngredientEntry)(nil),           // 14: kaiseki.menu.v1.IngredientEntry
	(*DetectIngredientsResponse)(nil), // 15: kaiseki.menu.v1.DetectIngredientsResponse
	(*SynthesizeImageRequest)(nil),    // 16: kaiseki.menu.v1.SynthesizeImageRequest
	(*SynthesizeImageResponse)(nil),   // 17: kaiseki.menu.v1.SynthesizeImageResponse
}
var file_proto_menu_proto_depIdxs = []int32{
	2,  // 0: kaiseki.menu.v1.BoundingBox.corners:type_name -> kaiseki.menu.v1.Point
	1,  // 1: kaiseki.menu.v1.Token.box:type_name -> kaiseki.menu.v1.BoundingBox
	3,  // 2: kaiseki.menu.v1.ExtractTextResponse.tokens:type_name -> kaiseki.menu.v1.Token
	3,  // 3: kaiseki.menu.v1.CategorizeMenuRequest.tokens:type_name -> kaiseki.menu.v1.Token
	6,  // 4: kaiseki.menu.v1.Category.items:type_name -> kaiseki.menu.v1.CategorizedItem
	7,  // 5: kaiseki.menu.v1.CategorizeMenuResponse.categories:type_name -> kaiseki.menu.v1.Category
	12, // 6: kaiseki.menu.v1.DetectAllergensResponse.entries:type_name -> kaiseki.menu.v1.AllergenEntry
	14, // 7: kaiseki.menu.v1.DetectIngredientsResponse.ingredients:type_name -> kaiseki.menu.v1.IngredientEntry
	0,  // 8: kaiseki.menu.v1.MenuIntelService.ExtractText:input_type -> kaiseki.menu.v1.ExtractTextRequest
	5,  // 9: kaiseki.menu.v1.MenuIntelService.CategorizeMenu:input_type -> kaiseki.menu.v1.CategorizeMenuRequest
	9,  // 10: kaiseki.menu.v1.MenuIntelService.Describe:input_type -> kaiseki.menu.v1.DescribeRequest
	11, // 11: kaiseki.menu.v1.MenuIntelService.DetectAllergens:input_type -> kaiseki.menu.v1.DetectRequest
	11, // 12: kaiseki.menu.v1.MenuIntelService.DetectIngredients:input_type -> kaiseki.menu.v1.DetectRequest
	16, // 13: kaiseki.menu.v1.MenuIntelService.SynthesizeImage:input_type -> kaiseki.menu.v1.SynthesizeImageRequest
	4,  // 14: kaiseki.menu.v1.MenuIntelService.ExtractText:output_type -> kaiseki.menu.v1.ExtractTextResponse
	8,  // 15: kaiseki.menu.v1.MenuIntelService.CategorizeMenu:output_type -> kaiseki.menu.v1.CategorizeMenuResponse
	10, // 16: kaiseki.menu.v1.MenuIntelService.Describe:output_type -> kaiseki.menu.v1.DescribeResponse
	13, // 17: kaiseki.menu.v1.MenuIntelService.DetectAllergens:output_type -> kaiseki.menu.v1.DetectAllergensResponse
	15, // 18: kaiseki.menu.v1.MenuIntelService.DetectIngredients:output_type -> kaiseki.menu.v1.DetectIngredientsResponse
	17, // 19: kaiseki.menu.v1.MenuIntelService.SynthesizeImage:output_type -> kaiseki.menu.v1.SynthesizeImageResponse
	14, // [14:20] is the sub-list for method output_type
	8,  // [8:14] is the sub-list for method input_type
	8,  // [8:8] is the sub-list for extension type_name
	8,  // [8:8] is the sub-list for extension extendee
	0,  // [0:8] is the sub-list for field type_name
}

func init() { file_proto_menu_proto_init() }
func file_proto_menu_proto_init() {
	if File_proto_menu_proto != nil {
		return
	}
	type x struct{}
	out := protoimpl.TypeBuilder{
		File: protoimpl.DescBuilder{
			GoPackagePath: reflect.TypeOf(x{}).PkgPath(),
			RawDescriptor: unsafe.Slice(unsafe.StringData(file_proto_menu_proto_rawDesc), len(file_proto_menu_proto_rawDesc)),
			NumEnums:      0,
			NumMessages:   18,
			NumExtensions: 0,
			NumServices:   1,
		},
		GoTypes:           file_proto_menu_proto_goTypes,
		DependencyIndexes: file_proto_menu_proto_depIdxs,
		MessageInfos:      file_proto_menu_proto_msgTypes,
	}.Build()
	File_proto_menu_proto = out.File
	file_proto_menu_proto_goTypes = nil
	file_proto_menu_proto_depIdxs = nil
}
