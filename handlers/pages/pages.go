package pages

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// The admin pages are deliberately bare: all business logic lives in the
// API, the dashboard only drives it.

const loginPage = `<!DOCTYPE html>
<html>
<head><meta charset="utf-8"><title>Admin Login</title></head>
<body>
<h1>Admin Login</h1>
<form id="login-form">
  <input type="email" id="email" placeholder="Email" required>
  <input type="password" id="password" placeholder="Password" required>
  <button type="submit">Sign in</button>
</form>
<p id="error"></p>
<script>
document.getElementById('login-form').addEventListener('submit', async (e) => {
  e.preventDefault();
  const res = await fetch('/api/v1/auth/login', {
    method: 'POST',
    headers: {'Content-Type': 'application/json'},
    body: JSON.stringify({
      email: document.getElementById('email').value,
      password: document.getElementById('password').value
    })
  });
  if (res.ok) {
    window.location.href = '/admin/dashboard';
  } else {
    const body = await res.json().catch(() => ({}));
    document.getElementById('error').textContent = body.error || 'Login failed';
  }
});
</script>
</body>
</html>`

const dashboardPage = `<!DOCTYPE html>
<html>
<head><meta charset="utf-8"><title>Dashboard</title></head>
<body>
<h1>Dashboard</h1>
<p>Manage ranking and site settings through the API.</p>
<button id="logout">Logout</button>
<table id="participants"><thead><tr><th>Name</th><th>Video</th><th>Likes</th></tr></thead><tbody></tbody></table>
<script>
document.getElementById('logout').addEventListener('click', async () => {
  await fetch('/api/v1/auth/logout', {method: 'POST'});
  window.location.href = '/admin/login';
});
(async () => {
  const res = await fetch('/api/v1/participants');
  if (!res.ok) return;
  const rows = await res.json();
  const tbody = document.querySelector('#participants tbody');
  for (const p of rows) {
    const tr = document.createElement('tr');
    for (const v of [p.name, p.video_title, p.likes]) {
      const td = document.createElement('td');
      td.textContent = v;
      tr.appendChild(td);
    }
    tbody.appendChild(tr);
  }
})();
</script>
</body>
</html>`

func LoginPage(c *gin.Context) {
	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(loginPage))
}

func DashboardPage(c *gin.Context) {
	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(dashboardPage))
}
