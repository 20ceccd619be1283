package web

// portalHTML is the single-page staff portal. Ported as-is from the academy's
// existing dashboard; the markup is an asset, not logic.
const portalHTML = `<!DOCTYPE html>
<html lang="de">
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <title>{{if .IsSenior}}Ausbilderleitung{{else}}Ausbilder{{end}} Portal</title>
    <style>
        * { margin: 0; padding: 0; box-sizing: border-box; }
        body { font-family: 'Segoe UI', sans-serif; background: linear-gradient(135deg, #667eea 0%, #764ba2 100%); min-height: 100vh; padding: 20px; }
        .container { max-width: 1400px; margin: 0 auto; background: white; border-radius: 15px; box-shadow: 0 20px 60px rgba(0,0,0,0.3); overflow: hidden; }
        .header { background: linear-gradient(135deg, #02244b 0%, #034078 100%); color: white; padding: 30px; position: relative; }
        .header h1 { font-size: 2em; margin-bottom: 10px; }
        .user-info { position: absolute; top: 20px; right: 30px; display: flex; align-items: center; gap: 15px; }
        .avatar { width: 50px; height: 50px; border-radius: 50%; border: 3px solid white; }
        .nav { background: #f8f9fa; padding: 15px 30px; display: flex; gap: 15px; border-bottom: 2px solid #e9ecef; flex-wrap: wrap; }
        .nav button { padding: 10px 20px; border: none; background: #02244b; color: white; border-radius: 5px; cursor: pointer; transition: all 0.3s; }
        .nav button:hover { background: #034078; transform: translateY(-2px); }
        .nav button.active { background: #667eea; }
        .content { padding: 30px; }
        .login-container { max-width: 500px; margin: 100px auto; background: white; padding: 50px; border-radius: 15px; box-shadow: 0 10px 40px rgba(0,0,0,0.2); text-align: center; }
        .login-container h2 { color: #02244b; margin-bottom: 20px; font-size: 2em; }
        .discord-btn { display: inline-block; padding: 15px 40px; background: #5865F2; color: white; text-decoration: none; border-radius: 8px; font-weight: 600; transition: all 0.3s; }
        .discord-btn:hover { background: #4752C4; transform: translateY(-2px); }
        .form-group { margin-bottom: 20px; }
        .form-group label { display: block; font-weight: 600; margin-bottom: 8px; }
        .form-group input, .form-group textarea, .form-group select { width: 100%; padding: 12px; border: 2px solid #e9ecef; border-radius: 5px; }
        .form-group textarea { min-height: 100px; resize: vertical; }
        .save-btn { padding: 15px 40px; background: linear-gradient(135deg, #667eea 0%, #764ba2 100%); color: white; border: none; border-radius: 8px; font-weight: 600; cursor: pointer; transition: transform 0.3s; }
        .save-btn:hover { transform: scale(1.05); }
        .success { background: #d4edda; color: #155724; padding: 15px; border-radius: 5px; margin-bottom: 20px; }
        .error { background: #f8d7da; color: #721c24; padding: 15px; border-radius: 5px; margin-bottom: 20px; }
        .page { display: none; }
        .page.active { display: block; }
        .participant-row { display: grid; grid-template-columns: 2fr 1fr 100px; gap: 15px; margin-bottom: 15px; padding: 15px; background: #f8f9fa; border-radius: 8px; }
        .channel-selector { display: grid; grid-template-columns: repeat(auto-fit, minmax(200px, 1fr)); gap: 15px; margin-top: 20px; }
        .channel-option { padding: 20px; background: #f8f9fa; border: 2px solid #e9ecef; border-radius: 10px; cursor: pointer; text-align: center; transition: all 0.3s; }
        .channel-option:hover, .channel-option.selected { border-color: #667eea; background: #e8eafe; }
        .list-editor { background: white; border: 2px solid #e9ecef; border-radius: 5px; padding: 15px; }
        .list-item { display: flex; gap: 10px; margin-bottom: 10px; }
        .list-item input { flex: 1; padding: 8px; border: 1px solid #dee2e6; border-radius: 3px; }
        .template-card { background: #f8f9fa; border-radius: 10px; padding: 20px; margin-bottom: 20px; border-left: 5px solid #667eea; }
    </style>
</head>
<body>
    {{if not .User}}
    <div class="login-container">
        <h2>🔐 Portal Login</h2>
        <p style="color: #666; margin-bottom: 30px;">Melde dich mit Discord an</p>
        {{if eq .Error "no_permission"}}
        <div class="error">❌ Keine Berechtigung!</div>
        {{end}}
        <a href="/login" class="discord-btn">Mit Discord anmelden</a>
    </div>
    {{else}}
    <div class="container">
        <div class="header">
            <h1>{{if .IsSenior}}Ausbilderleitungs{{else}}Ausbilder{{end}}-Portal</h1>
            <p>Willkommen, {{.User.Username}}!</p>
            <div class="user-info">
                {{if .User.Avatar}}
                <img src="https://cdn.discordapp.com/avatars/{{.User.UserID}}/{{.User.Avatar}}.png" class="avatar">
                {{end}}
                <div style="text-align: left;">
                    <div style="font-weight: 600;">{{.User.Username}}</div>
                    <div style="font-size: 0.9em; opacity: 0.8;">{{if .IsSenior}}Ausbilderleitung{{else}}Ausbilder{{end}}</div>
                </div>
            </div>
        </div>
        <div class="nav">
            {{if .IsSenior}}
            <button onclick="showPage('templates')" class="active">Templates</button>
            <button onclick="showPage('editor')">Embed Editor</button>
            {{end}}
            <button onclick="showPage('evaluations')" {{if not .IsSenior}}class="active"{{end}}>Auswertungen</button>
            <button onclick="location.href='/logout'" style="margin-left: auto; background: #dc3545;">Abmelden</button>
        </div>
        <div class="content">
            {{if .Success}}<div class="success">✅ {{.Success}}</div>{{end}}
            {{if .Error}}<div class="error">❌ {{.Error}}</div>{{end}}

            {{if .IsSenior}}
            <div class="page active" id="page-templates">
                <h2 style="margin-bottom: 20px;">📋 Templates</h2>
                {{range .Templates}}
                <div class="template-card">
                    <h3>{{.Template.Title}}</h3>
                    <form method="POST" action="/templates/{{.Type}}">
                        <div class="form-group"><label>Titel:</label><input type="text" name="title" value="{{.Template.Title}}" required></div>
                        <div class="form-group"><label>Intro:</label><textarea name="intro" required>{{.Template.Intro}}</textarea></div>
                        <div class="form-group"><label>Themen:</label><div class="list-editor" id="topics-{{.Type}}">{{range .Template.Topics}}<div class="list-item"><input type="text" name="topics[]" value="{{.}}"><button type="button" onclick="this.parentElement.remove()">❌</button></div>{{end}}</div><button type="button" onclick="addListItem('topics-{{.Type}}', 'topics[]')" style="padding: 8px 16px; background: #28a745; color: white; border: none; border-radius: 5px; cursor: pointer; margin-top: 10px;">+ Thema</button></div>
                        <button type="submit" class="save-btn">Speichern</button>
                    </form>
                </div>
                {{end}}
            </div>

            <div class="page" id="page-editor">
                <h2 style="margin-bottom: 20px;">✏️ Embed Editor</h2>
                <form id="embed-form" method="POST" action="/messages">
                    <div class="form-group"><label>Nachricht:</label><textarea name="content" rows="3"></textarea></div>
                    <div class="form-group"><label>Titel:</label><input type="text" name="title" required></div>
                    <div class="form-group"><label>Beschreibung:</label><textarea name="description" rows="5" required></textarea></div>
                    <div class="form-group"><label>Farbe (Hex):</label><input type="text" name="color" value="#667eea"></div>
                    <div class="form-group"><label>Typ:</label><select name="message_type"><option value="theorie">Theorie</option><option value="grund">Grund</option><option value="stvo">StVO</option></select></div>
                    <button type="button" class="save-btn" onclick="showChannelSelector()">Senden</button>
                    <div id="channel-selector-container" style="display: none;">
                        <div class="channel-selector">
                            <div class="channel-option" onclick="selectChannel(this, 'announcement')">📢 Ankündigung</div>
                            <div class="channel-option" onclick="selectChannel(this, 'evaluation')">📊 Auswertung</div>
                            <div class="channel-option" onclick="selectChannel(this, 'custom')">🎯 Custom</div>
                        </div>
                        <input type="hidden" name="channel_type" id="channel-type-input">
                        <div id="custom-channel-input" style="display: none; margin-top: 15px;"><input type="text" name="custom_channel_id" placeholder="Kanal-ID" style="width: 100%; padding: 12px; border: 2px solid #e9ecef; border-radius: 5px;"></div>
                        <button type="submit" class="save-btn" style="margin-top: 20px; width: 100%;">📤 Jetzt senden</button>
                    </div>
                </form>
            </div>
            {{end}}

            <div class="page {{if not .IsSenior}}active{{end}}" id="page-evaluations">
                <h2 style="margin-bottom: 20px;">📊 Auswertungen</h2>
                <form method="POST" action="/evaluations">
                    <div class="form-group"><label>Typ:</label><select name="training_type" id="training-type" onchange="updateMaxPoints()" required><option value="">Wählen</option><option value="theorie">Theorie</option><option value="grund">Grund</option><option value="stvo">StVO</option></select></div>
                    <div id="participants-container"></div>
                    <button type="button" onclick="addParticipant()" style="padding: 8px 16px; background: #28a745; color: white; border: none; border-radius: 5px; cursor: pointer;">+ Teilnehmer</button>
                    <button type="submit" class="save-btn" style="margin-top: 20px;">Senden</button>
                </form>
            </div>
        </div>
    </div>
    <script>
        function showPage(p) { document.querySelectorAll('.page').forEach(x => x.classList.remove('active')); document.querySelectorAll('.nav button').forEach(x => x.classList.remove('active')); document.getElementById('page-' + p).classList.add('active'); event.target.classList.add('active'); }
        function addListItem(c, f) { const d = document.createElement('div'); d.className = 'list-item'; d.innerHTML = '<input type="text" name="' + f + '" value=""><button type="button" onclick="this.parentElement.remove()">❌</button>'; document.getElementById(c).appendChild(d); }
        function updateMaxPoints() { const t = document.getElementById('training-type').value; const m = (t === 'theorie' || t === 'grund') ? 50 : 25; document.querySelectorAll('.points-input').forEach(i => { i.max = m; i.placeholder = '0-' + m; }); }
        function addParticipant() { const t = document.getElementById('training-type').value; if (!t) { alert('Typ wählen!'); return; } const m = (t === 'theorie' || t === 'grund') ? 50 : 25; const d = document.createElement('div'); d.className = 'participant-row'; d.innerHTML = '<input type="text" name="user_id[]" placeholder="User ID" required><input type="number" name="points[]" class="points-input" min="0" max="' + m + '" placeholder="0-' + m + '" required><button type="button" onclick="this.parentElement.remove()" style="padding: 10px 20px; background: #dc3545; color: white; border: none; border-radius: 5px; cursor: pointer;">❌</button>'; document.getElementById('participants-container').appendChild(d); }
        function showChannelSelector() { const f = document.getElementById('embed-form'); if (!f.checkValidity()) { f.reportValidity(); return; } document.getElementById('channel-selector-container').style.display = 'block'; }
        function selectChannel(e, t) { document.querySelectorAll('.channel-option').forEach(x => x.classList.remove('selected')); e.classList.add('selected'); document.getElementById('channel-type-input').value = t; document.getElementById('custom-channel-input').style.display = t === 'custom' ? 'block' : 'none'; }
    </script>
    {{end}}
</body>
</html>`
