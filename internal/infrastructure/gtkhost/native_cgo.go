//go:build webkit_cgo

package gtkhost

/*
#cgo pkg-config: webkitgtk-6.0 gtk4 javascriptcoregtk-6.0
#include <stdlib.h>
#include <gtk/gtk.h>
#include <gdk/gdk.h>
#include <webkit/webkit.h>
#include <jsc/jsc.h>

extern void goOnScriptMessage(unsigned long handle, char* json);
extern GtkWidget* goOnCreate(unsigned long handle, char* uri);
extern void goOnGLibLog(int level, char* domain, char* message);

static gboolean meikai_is_main_thread(void) {
    return g_main_context_is_owner(g_main_context_default());
}

static void meikai_on_script_message(WebKitUserContentManager* ucm, JSCValue* val, gpointer user_data) {
    (void)ucm;
    if (!val) return;
    gchar* s = jsc_value_to_string(val);
    if (!s) return;
    goOnScriptMessage((unsigned long)user_data, s);
    g_free(s);
}

static gboolean meikai_register_handler(WebKitWebView* view, const char* name, unsigned long handle) {
    WebKitUserContentManager* ucm = webkit_web_view_get_user_content_manager(view);
    if (!ucm || !name) return FALSE;
    // Connect before registering so no message is lost.
    gchar* signal = g_strdup_printf("script-message-received::%s", name);
    if (!signal) return FALSE;
    g_signal_connect_data(G_OBJECT(ucm), signal, G_CALLBACK(meikai_on_script_message), (gpointer)handle, NULL, 0);
    g_free(signal);
    return webkit_user_content_manager_register_script_message_handler(ucm, name, NULL);
}

static GtkWidget* meikai_on_create(WebKitWebView* view, WebKitNavigationAction* action, gpointer user_data) {
    (void)view;
    WebKitURIRequest* request = webkit_navigation_action_get_request(action);
    const char* uri = request ? webkit_uri_request_get_uri(request) : NULL;
    return goOnCreate((unsigned long)user_data, (char*)(uri ? uri : ""));
}

static void meikai_connect_create(WebKitWebView* view, unsigned long handle) {
    g_signal_connect_data(G_OBJECT(view), "create", G_CALLBACK(meikai_on_create), (gpointer)handle, NULL, 0);
}

static void meikai_popup_ready(WebKitWebView* view, gpointer user_data) {
    (void)view;
    gtk_window_present(GTK_WINDOW(user_data));
}

static void meikai_popup_close(WebKitWebView* view, gpointer user_data) {
    (void)view;
    gtk_window_destroy(GTK_WINDOW(user_data));
}

// The pop-up shares the opener's web process so window.opener survives.
static GtkWidget* meikai_new_popup(WebKitWebView* parent, int width, int height) {
    WebKitWebView* popup = WEBKIT_WEB_VIEW(g_object_new(WEBKIT_TYPE_WEB_VIEW, "related-view", parent, NULL));
    GtkWidget* win = gtk_window_new();
    GtkRoot* root = gtk_widget_get_root(GTK_WIDGET(parent));
    if (root && GTK_IS_WINDOW(root)) {
        gtk_window_set_transient_for(GTK_WINDOW(win), GTK_WINDOW(root));
    }
    gtk_window_set_default_size(GTK_WINDOW(win), width, height);
    gtk_window_set_child(GTK_WINDOW(win), GTK_WIDGET(popup));
    g_signal_connect(popup, "ready-to-show", G_CALLBACK(meikai_popup_ready), win);
    g_signal_connect(popup, "close", G_CALLBACK(meikai_popup_close), win);
    return GTK_WIDGET(popup);
}

static void meikai_evaluate(WebKitWebView* view, const char* script) {
    webkit_web_view_evaluate_javascript(view, script, -1, NULL, NULL, NULL, NULL, NULL);
}

static GdkToplevel* meikai_toplevel(GtkWindow* win) {
    GdkSurface* surface = gtk_native_get_surface(GTK_NATIVE(win));
    if (!surface || !GDK_IS_TOPLEVEL(surface)) return NULL;
    return GDK_TOPLEVEL(surface);
}

static int meikai_is_minimized(GtkWindow* win) {
    GdkToplevel* toplevel = meikai_toplevel(win);
    if (!toplevel) return 0;
    return (gdk_toplevel_get_state(toplevel) & GDK_TOPLEVEL_STATE_MINIMIZED) ? 1 : 0;
}

static gboolean meikai_begin_move(GtkWindow* win) {
    GdkToplevel* toplevel = meikai_toplevel(win);
    if (!toplevel) return FALSE;
    GdkSurface* surface = GDK_SURFACE(toplevel);
    GdkSeat* seat = gdk_display_get_default_seat(gdk_surface_get_display(surface));
    GdkDevice* pointer = seat ? gdk_seat_get_pointer(seat) : NULL;
    if (!pointer) return FALSE;
    double x = 0, y = 0;
    gdk_surface_get_device_position(surface, pointer, &x, &y, NULL);
    gdk_toplevel_begin_move(toplevel, pointer, GDK_BUTTON_PRIMARY, x, y, GDK_CURRENT_TIME);
    return TRUE;
}

static gboolean meikai_primary_monitor(int* width, int* height) {
    GdkDisplay* display = gdk_display_get_default();
    if (!display) return FALSE;
    GListModel* monitors = gdk_display_get_monitors(display);
    if (!monitors || g_list_model_get_n_items(monitors) == 0) return FALSE;
    GdkMonitor* monitor = GDK_MONITOR(g_list_model_get_item(monitors, 0));
    GdkRectangle geometry;
    gdk_monitor_get_geometry(monitor, &geometry);
    g_object_unref(monitor);
    *width = geometry.width;
    *height = geometry.height;
    return geometry.width > 0 && geometry.height > 0;
}

static GLogWriterOutput meikai_log_writer(GLogLevelFlags level, const GLogField* fields, gsize n, gpointer user_data) {
    (void)user_data;
    const char* domain = NULL;
    const char* message = NULL;
    for (gsize i = 0; i < n; i++) {
        if (g_strcmp0(fields[i].key, "GLIB_DOMAIN") == 0) domain = fields[i].value;
        else if (g_strcmp0(fields[i].key, "MESSAGE") == 0) message = fields[i].value;
    }
    if (!message) return G_LOG_WRITER_UNHANDLED;
    goOnGLibLog((int)level, (char*)(domain ? domain : ""), (char*)message);
    return G_LOG_WRITER_HANDLED;
}

static void meikai_install_log_writer(void) {
    g_log_set_writer_func(meikai_log_writer, NULL, NULL);
}
*/
import "C"

import (
	"sync"
	"sync/atomic"
	"unsafe"

	"github.com/bnema/meikai/internal/domain/entity"
	"github.com/rs/zerolog"
)

// activeHost receives native callbacks. There is one GTK application per
// process.
var activeHost atomic.Pointer[Host]

var (
	glibLogOnce sync.Once
	glibLogger  zerolog.Logger
)

// InstallGLibLogHandler routes GTK, GDK, GLib and WebKit log messages to
// logger. Only the first call has an effect; it must happen before the
// toolkit is initialized.
func InstallGLibLogHandler(logger zerolog.Logger) {
	glibLogOnce.Do(func() {
		glibLogger = logger.With().Str("component", "glib").Logger()
		C.meikai_install_log_writer()
	})
}

//export goOnGLibLog
func goOnGLibLog(level C.int, domain *C.char, message *C.char) {
	logGLib(&glibLogger, int(level), C.GoString(domain), C.GoString(message))
}

//export goOnScriptMessage
func goOnScriptMessage(handle C.ulong, raw *C.char) {
	h := activeHost.Load()
	if h == nil || raw == nil {
		return
	}
	h.handleScriptMessage(uint64(handle), []byte(C.GoString(raw)))
}

//export goOnCreate
func goOnCreate(handle C.ulong, curi *C.char) *C.GtkWidget {
	h := activeHost.Load()
	if h == nil {
		return nil
	}
	parent, allow := h.decideNewWindow(uint64(handle), C.GoString(curi))
	if !allow || parent == 0 {
		return nil
	}
	return C.meikai_new_popup(asWebView(parent), C.int(popupWidth), C.int(popupHeight))
}

func asWebView(native uintptr) *C.WebKitWebView {
	return (*C.WebKitWebView)(unsafe.Pointer(native))
}

func asWindow(native uintptr) *C.GtkWindow {
	return (*C.GtkWindow)(unsafe.Pointer(native))
}

func isMainThread() bool {
	return C.meikai_is_main_thread() != 0
}

func registerMessageHandler(view uintptr, name string, handle uint64) bool {
	cname := C.CString(name)
	defer C.free(unsafe.Pointer(cname))
	return C.meikai_register_handler(asWebView(view), cname, C.ulong(handle)) != 0
}

func connectCreate(view uintptr, handle uint64) {
	C.meikai_connect_create(asWebView(view), C.ulong(handle))
}

func evaluateScript(view uintptr, script string) {
	cscript := C.CString(script)
	defer C.free(unsafe.Pointer(cscript))
	C.meikai_evaluate(asWebView(view), cscript)
}

func isMinimized(win uintptr) bool {
	return C.meikai_is_minimized(asWindow(win)) != 0
}

func beginMove(win uintptr) bool {
	return C.meikai_begin_move(asWindow(win)) != 0
}

func primaryMonitor() (entity.Size, bool) {
	var width, height C.int
	if C.meikai_primary_monitor(&width, &height) == 0 {
		return entity.Size{}, false
	}
	return entity.Size{Width: int(width), Height: int(height)}, true
}
