package http

import (
	"fmt"
	"net/http"
)

func (s *Server) handleAdmin(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	fmt.Fprint(w, adminPage)
}

const adminPage = `<!DOCTYPE html>
<html>
<head>
    <meta charset="UTF-8">
    <title>Inovelli LED Manager</title>
    <style>
        body { font-family: sans-serif; max-width: 1100px; margin: 40px auto; padding: 20px; line-height: 1.6; background-color: #f4f4f9; }
        table { width: 100%; border-collapse: collapse; margin-bottom: 20px; background: white; }
        th, td { border: 1px solid #ddd; padding: 10px; text-align: left; }
        th { background-color: #f8f9fa; }
        textarea { width: 100%; height: 360px; font-family: monospace; box-sizing: border-box; }
        button { padding: 10px 15px; background: #007bff; color: white; border: none; cursor: pointer; border-radius: 4px; }
        button:hover { background: #0056b3; }
        .ring { color: #dc3545; font-weight: bold; }
        #status { margin-top: 20px; padding: 10px; border-radius: 4px; display: none; position: fixed; bottom: 20px; right: 20px; }
        .success { background: #d4edda; color: #155724; border: 1px solid #c3e6cb; }
        .error { background: #f8d7da; color: #721c24; border: 1px solid #f5c6cb; }
    </style>
</head>
<body>
    <h1>Inovelli LED Manager</h1>

    <h2>Nodes</h2>
    <table>
        <thead><tr><th>Name</th><th>Domain</th><th>Target</th><th>Switch</th><th>Status</th></tr></thead>
        <tbody id="nodes"></tbody>
    </table>

    <h2>Presets</h2>
    <textarea id="presets"></textarea>
    <p><button onclick="savePresets()">Save presets</button></p>

    <div id="status"></div>

    <script>
        async function loadNodes() {
            const nodes = await (await fetch('/api/nodes')).json();
            const body = document.getElementById('nodes');
            body.innerHTML = '';
            for (const n of nodes) {
                const st = await (await fetch('/api/nodes/' + encodeURIComponent(n.name) + '/status')).json();
                const tr = document.createElement('tr');
                const target = n.zwave === 'zwave_js' ? n.entity_id : n.node_id;
                for (const v of [n.name, n.zwave, target, n.switchtype]) {
                    const td = document.createElement('td');
                    td.textContent = v || '';
                    tr.appendChild(td);
                }
                const td = document.createElement('td');
                td.textContent = st.text || '';
                if (st.shape === 'ring') td.className = 'ring';
                tr.appendChild(td);
                body.appendChild(tr);
            }
        }

        async function loadPresets() {
            const presets = await (await fetch('/admin/presets')).json();
            document.getElementById('presets').value = JSON.stringify(presets, null, 2);
        }

        async function savePresets() {
            let body;
            try {
                body = JSON.parse(document.getElementById('presets').value);
            } catch (e) {
                showStatus('Error: ' + e.message);
                return;
            }
            const res = await fetch('/admin/presets', {
                method: 'PUT',
                headers: { 'Content-Type': 'application/json' },
                body: JSON.stringify(body)
            });
            if (res.ok) {
                showStatus('Presets saved and applied');
                await loadNodes();
            } else {
                const err = await res.json();
                showStatus('Error: ' + err.message);
            }
        }

        function showStatus(msg) {
            const s = document.getElementById('status');
            s.textContent = msg;
            s.style.display = 'block';
            s.className = msg.startsWith('Error') ? 'error' : 'success';
            setTimeout(() => { s.style.display = 'none'; }, 3000);
        }

        loadNodes();
        loadPresets();
    </script>
</body>
</html>
`
