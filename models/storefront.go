package models

// View models handed to the HTML templates. These are pure projections of
// fetched data plus local, client-only state; nothing here is persisted.

// ProductCard pairs a product with the ephemeral per-item UI state.
type ProductCard struct {
	Product Product
	IsLiked bool
	InCart  bool
}

// ResourceState is the render state of one cached fetch.
type ResourceState struct {
	Loading bool
	Err     string
}

// Failed reports whether the resource should render its inline error
// message with a retry affordance.
func (s ResourceState) Failed() bool { return s.Err != "" }

// HomeView drives the filter page. Exactly one of the grid states holds:
// Products.Loading (skeleton cells), Products.Failed (error message), or a
// ready grid which is either empty or populated.
type HomeView struct {
	Fields     FilterFields
	Query      string
	Categories []Category
	Colors     []Color
	CatState   ResourceState
	ColorState ResourceState
	Products   ResourceState
	Cards      []ProductCard
	Page       Pagination
	Session    *Session
	// SkeletonCells sizes the placeholder grid while products load.
	SkeletonCells []struct{}
}

// DetailView drives the product detail page.
type DetailView struct {
	Product  Product
	IsLiked  bool
	InCart   bool
	Session  *Session
	Flash    string
	FlashErr string
}

// LoginView drives the four-step login/registration flow.
type LoginView struct {
	Step         string // login | registerEmail | verifyOtp | registerDetails
	Error        string
	Email        string
	Register     RegisterInput
	Regions      []Region
	RegionsErr   string
	ResendWindow int // seconds until another OTP may be requested
}

// ProfileView drives the profile page.
type ProfileView struct {
	Session  *Session
	TokenExp string // informational only; expiry is still detected reactively
}
