package services

import (
	"errors"
	"time"

	"github.com/wanderpair/wanderpair/internal/models"
	"github.com/wanderpair/wanderpair/internal/storage"
)

const (
	AuthModeLogin    = "login"
	AuthModeRegister = "register"
)

// AuthRequest is the single authentication entry point's input.
type AuthRequest struct {
	Mode            string
	MyUsername      string
	PartnerUsername string
	Password        string
	ConfirmPassword string
}

// AuthResult is what the presentation layer shows: a flag plus a message
// ready for display. Auth failures are results, not errors.
type AuthResult struct {
	Success bool
	Message string
}

// Workspace is the session-scoped application core behind the UI: it owns
// the active session, the live destination list, the preference records and
// the derived view, and recomputes the view after every mutation.
type Workspace struct {
	adapter      storage.Adapter
	directory    *AccountDirectory
	resolver     *SessionResolver
	destinations *DestinationStore
	preferences  *PreferenceStore
	now          func() time.Time

	session  *models.Session
	pinned   []string
	progress map[string]bool
	promise  *models.SharedPromise
	view     DerivedView
}

// NewWorkspace wires the core over one adapter and restores whatever
// session the last run left behind.
func NewWorkspace(adapter storage.Adapter) *Workspace {
	directory := NewAccountDirectory(adapter)
	workspace := &Workspace{
		adapter:      adapter,
		directory:    directory,
		resolver:     NewSessionResolver(adapter, directory),
		destinations: NewDestinationStore(adapter),
		preferences:  NewPreferenceStore(adapter),
		now:          time.Now,
	}

	if session, ok := workspace.resolver.ResolveOnStartup(); ok {
		workspace.session = &session
	}
	workspace.reloadSessionState()
	return workspace
}

// Session returns the active session, nil when anonymous.
func (workspace *Workspace) Session() *models.Session {
	return workspace.session
}

// View returns the last recomputed derived view.
func (workspace *Workspace) View() DerivedView {
	return workspace.view
}

// Destinations returns a deep-cloned snapshot of the live list.
func (workspace *Workspace) Destinations() []models.Destination {
	return workspace.destinations.Snapshot()
}

// Promise returns the pair's shared promise, if any.
func (workspace *Workspace) Promise() (models.SharedPromise, bool) {
	if workspace.promise == nil {
		return models.SharedPromise{}, false
	}
	return *workspace.promise, true
}

// Authenticate handles both register and login and starts the session on
// success. Failures come back as displayable results; no error escapes.
func (workspace *Workspace) Authenticate(request AuthRequest) AuthResult {
	var account models.Account
	var err error

	switch request.Mode {
	case AuthModeRegister:
		account, err = workspace.directory.Register(request.MyUsername, request.PartnerUsername, request.Password, request.ConfirmPassword)
	case AuthModeLogin:
		account, err = workspace.directory.Login(request.MyUsername, request.PartnerUsername, request.Password)
	default:
		return AuthResult{Message: "操作未成功，请稍后再试。"}
	}
	if err != nil {
		return AuthResult{Message: authErrorMessage(err)}
	}

	self := ResolveSelfMember(account, storage.Normalize(request.MyUsername))
	session := workspace.resolver.Start(account, self)
	workspace.session = &session
	workspace.reloadSessionState()

	if request.Mode == AuthModeRegister {
		return AuthResult{Success: true, Message: "共享旅程创建成功，欢迎上路！"}
	}
	return AuthResult{Success: true, Message: "欢迎回来，地图已经同步。"}
}

// authErrorMessage maps directory failures to the user-facing copy.
func authErrorMessage(err error) string {
	switch {
	case errors.Is(err, ErrNamesRequired):
		return "请填写完整信息，让我们知道是谁要一起旅行。"
	case errors.Is(err, ErrSameNames):
		return "请输入两位不同旅伴的名字，这样我们才能把你们配对在一起。"
	case errors.Is(err, ErrPasswordTooShort):
		return "为了安全起见，请设置至少 6 位数的密码。"
	case errors.Is(err, ErrPasswordConfirmMismatch):
		return "两次输入的密码不一致，请再确认一次。"
	case errors.Is(err, ErrPairExists):
		return "这对名字已经创建过共享账号了，试试直接登录吧。"
	case errors.Is(err, ErrAccountNotFound):
		return "还没有找到你们的共享账号，先注册一个吧。"
	case errors.Is(err, ErrPasswordMismatch):
		return "共享密码不正确，请再试一次。"
	default:
		return "操作未成功，请稍后再试。"
	}
}

// Logout forgets the persisted pointer and reverts to the anonymous
// default dataset.
func (workspace *Workspace) Logout() {
	workspace.resolver.End()
	workspace.session = nil
	workspace.reloadSessionState()
}

// reloadSessionState rebuilds the whole in-memory state for the current
// session: destinations (with legacy migration), preference records pruned
// against the live catalogs, and the derived view.
func (workspace *Workspace) reloadSessionState() {
	workspace.destinations.Load(workspace.session)
	workspace.pinned = workspace.preferences.LoadPinned(workspace.session)
	workspace.progress = workspace.preferences.LoadProgress(workspace.session)

	if promise, ok := workspace.preferences.LoadPromise(workspace.session); ok {
		workspace.promise = &promise
	} else {
		workspace.promise = nil
	}

	workspace.recompute()
	workspace.collectGarbage()
}

// collectGarbage prunes preference records against the current catalogs.
// Catalog membership depends on live data, so stale ids can linger after
// any dataset change; pruned state is persisted only when it differs.
func (workspace *Workspace) collectGarbage() {
	prunedPins := PrunePinnedAchievements(workspace.pinned, AchievementCatalogIDs())
	if len(prunedPins) != len(workspace.pinned) {
		workspace.pinned = prunedPins
		workspace.preferences.SavePinned(workspace.session, workspace.pinned)
		workspace.recompute()
	}

	prunedProgress := PrunePromptProgress(workspace.progress, workspace.view.ConnectionPrompts)
	if len(prunedProgress) != len(workspace.progress) {
		workspace.progress = prunedProgress
		workspace.preferences.SaveProgress(workspace.session, workspace.progress)
		workspace.recompute()
	}
}

// recompute rebuilds the derived view from one immutable snapshot.
func (workspace *Workspace) recompute() {
	workspace.view = BuildDerivedView(workspace.destinations.Snapshot(), workspace.pinned, workspace.progress, workspace.now())
}

// AddDestination stamps, stores and persists a new destination, then
// refreshes the view.
func (workspace *Workspace) AddDestination(payload models.Destination) models.Destination {
	added := workspace.destinations.Add(payload)
	workspace.recompute()
	return added
}

// UpdateDestination replaces a destination by id and refreshes the view.
func (workspace *Workspace) UpdateDestination(updated models.Destination) {
	workspace.destinations.Update(updated)
	workspace.recompute()
}

// ToggleAchievementPin flips a pin, evicting the oldest beyond capacity,
// persists the list and refreshes the view.
func (workspace *Workspace) ToggleAchievementPin(id string) {
	workspace.pinned = TogglePinnedAchievement(workspace.pinned, id)
	workspace.preferences.SavePinned(workspace.session, workspace.pinned)
	workspace.recompute()
}

// ToggleConnectionPrompt flips a prompt's completion, persists the map and
// refreshes the view.
func (workspace *Workspace) ToggleConnectionPrompt(id string) {
	workspace.progress = ToggleConnectionPrompt(workspace.progress, id)
	workspace.preferences.SaveProgress(workspace.session, workspace.progress)
	workspace.recompute()
}

// SavePromise trims and stores the shared promise.
func (workspace *Workspace) SavePromise(mantra string, ritual string) (models.SharedPromise, error) {
	promise, err := workspace.preferences.SavePromise(workspace.session, models.SharedPromise{
		Mantra: mantra,
		Ritual: ritual,
	})
	if err != nil {
		return models.SharedPromise{}, err
	}
	workspace.promise = &promise
	return promise, nil
}

// RemovePromise clears the promise and its persisted key.
func (workspace *Workspace) RemovePromise() {
	workspace.preferences.RemovePromise(workspace.session)
	workspace.promise = nil
}
